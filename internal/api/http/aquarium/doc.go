// Package aquarium exposes the aquarium service over a JSON REST API.
//
// Handler translates HTTP requests into Service calls and maps domain errors
// to status codes: missing records become 404, a full aquarium 409, invalid
// input 400. Every request gets an X-Request-ID and an access log line.
package aquarium
