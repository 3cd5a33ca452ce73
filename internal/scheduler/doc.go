// Package scheduler runs named recurring tasks at a fixed rate.
//
// Each task gets its own goroutine and ticker. A run always completes before
// the next one starts; ticks missed while a run is in progress are dropped.
// Errors are logged and never stop the schedule.
package scheduler
