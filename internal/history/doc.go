// Package history records collection runs in SQLite.
//
// Every `wordlist collect` invocation opens a run before reading any source
// and closes it as succeeded or failed, together with per-source statistics.
// The ledger is append-mostly; Prune trims it to the most recent runs.
//
// Schema changes bump schemaVersion in schema.go; users delete the database to
// adopt a new schema.
package history
