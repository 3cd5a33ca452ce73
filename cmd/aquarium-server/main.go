package main

import "github.com/oshokin/aquarium/cmd/aquarium-server/cmd"

func main() {
	cmd.Execute()
}
