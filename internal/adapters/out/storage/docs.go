// Package storage implements the unit of work over an in-memory state
// backed by a collection store.
//
// The full data set lives in memory in a State guarded by a single mutex.
// A unit of work takes that mutex in Begin, stages every mutation on deep
// copies, and on Commit installs the staged aggregates into the state as
// one atomic step. Only then are the touched collections serialized as
// JSON and written through the CollectionStore; a store failure surfaces
// as a PersistenceError but never undoes the in-memory apply, so readers
// observe the committed state while the operator learns persistence is
// degraded.
//
// Rollback discards the staging area and releases the mutex, leaving the
// state untouched.
package storage
