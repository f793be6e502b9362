// Package workflow runs one collection end to end.
//
// The Manager prepares directories, takes the output lock, opens a history
// run, drives the wordlist collector and records the outcome. A failure at any
// step after the run is opened is written to history as a failed run before
// the error is returned. Finished runs beyond history.keep_runs are pruned.
package workflow
