// Package memory provides in-memory implementations of the storage
// ports. The job store is the production implementation (jobs are not
// persisted across restarts); the document store exists for tests and
// ephemeral runs.
package memory
