// Package aquarium implements persistence for aquariums and their fish.
//
// SQLiteRepository stores both entities in SQLite (pure Go driver), applies
// embedded goose migrations on open and exposes a Repository interface that
// the service depends on. InTx groups several calls into one transaction.
package aquarium
