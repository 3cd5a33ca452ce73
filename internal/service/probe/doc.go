// Package probe implements the probe command: it asks a running aquarium
// server for its gRPC health status and fails unless it is SERVING.
// Meant for container health checks and deployment scripts.
package probe
