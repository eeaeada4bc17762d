// Package history implements the bounded, most-recent-first scan history log.
//
// Every scan outcome — accepted or rejected — is appended here by the batch
// scanner, and the log can be queried by recency or calendar day, trimmed
// entry by entry, or cleared outright.
//
// # Bounded retention
//
// The log never holds more than its configured capacity (100 entries for the
// durable log, 50 for the in-memory batch-local variant). Appending at
// capacity evicts exactly the oldest entry.
//
// # Persistence
//
// Persistence is pluggable through the Medium interface, which exposes
// whole-log load/save semantics: MemoryMedium for tests and batch-local
// logs, GormMedium for a database-backed log that survives restarts.
package history
