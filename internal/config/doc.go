// Package config loads, normalizes, and validates wordlist configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// WORDLIST_OUTPUT. The Config type centralizes every knob the CLI needs so the
// source directory, output file, history database, and logging settings are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
