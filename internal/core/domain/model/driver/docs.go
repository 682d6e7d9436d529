// Package driver contains the Driver aggregate: a dispatchable agent with a
// duty status, at most one active order, and monotonic assignment counters.
package driver
