// Package version exposes build metadata of the aquarium server.
//
// Version, Commit and BuildTime are injected via ldflags. Full is printed by
// the version subcommand, UserAgent is sent in the HTTP Server header.
package version
