// Package server wires the aquarium server process together.
//
// Run loads configuration, opens the SQLite store, starts the simulation
// scheduler and serves the REST API plus an optional gRPC health endpoint
// until the context is canceled. Tick runs a single simulation pass and exits.
package server
