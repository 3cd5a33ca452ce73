// Package migrations embeds the SQLite schema migrations of the aquarium store.
package migrations

import "embed"

// FS contains the goose migrations applied on startup.
//
//go:embed *.sql
var FS embed.FS
