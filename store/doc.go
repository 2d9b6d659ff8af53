// Package store defines the data-source boundary for privilege records.
//
// The core never owns record storage: it consumes a RecordSource to
// fetch a principal's rows and encodes them into a token collection per
// query. MemoryStore is the in-memory implementation, suitable for
// tests, development, and seeding from configuration; production
// deployments put their own backend behind the same interface.
package store
