// Package health implements the standard gRPC health service for the
// aquarium server and a small client for probing it.
//
// The reported status follows the reachability of the database: SERVING
// while pings succeed, NOT_SERVING otherwise and after shutdown.
package health
