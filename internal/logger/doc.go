// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with console or JSON encoding (Configure),
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithFields/WithMinLevel),
//   - level parsing utilities,
//   - convenience functions (Infof, ErrorKV, etc.).
//
// All services accept a context and extract the logger from it, enabling
// scoped, structured logging throughout the codebase: HTTP requests carry
// their request_id, scheduler runs their task name and run_id.
package logger
