// Package main hosts the wordlist CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, builds the logger, and
// hands off to internal packages: workflow for collection, preflight for
// readiness checks, history for the run ledger. Commands only parse flags and
// render results.
package main
