// Package history provides an explicit, caller-owned undo stack of matrix
// snapshots.
//
// There is deliberately no process-wide history: a Stack is a plain value
// the caller creates, threads through the operations it wants recorded, and
// pops on undo. Push stores a deep copy, so later mutation of the pushed
// matrix never rewrites history.
package history
