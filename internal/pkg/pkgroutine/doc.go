// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors (prefixed
// with the task name), and logs panics so that background work such as the
// HTTP server loop does not crash the process silently.
package pkgroutine
