// Package preflight provides readiness checks for the files and directories
// a collection run depends on.
//
// `wordlist check` calls RunAll and renders every result. `wordlist collect`
// does not run preflight; it fails on the first source it cannot read.
package preflight
