// Package countdown computes the hourly countdown toward a target minute.
//
// The package is pure: every function works only on its arguments and is
// safe to call from any goroutine. Sampling the clock, refreshing the
// terminal and remembering the active target belong to the callers in
// internal/service and internal/cli.
package countdown
