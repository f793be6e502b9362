// Package wordlist extracts a deduplicated word list from plain-text books.
//
// Each source is read whole, decoded to text, and scanned for maximal runs of
// ASCII letters plus hyphen, period, apostrophe, and slash. Every run is
// normalized by dropping all non-letters and folding to lowercase, then added
// to a Set shared across sources. A run with no letters at all normalizes to
// the empty string, which is kept as a member like any other word.
//
// Normalization can merge distinct raw tokens: "it's" and "its" both become
// "its". Callers that need to tell them apart must work with Extract directly.
//
// Collection is all-or-nothing. The first source that cannot be read aborts
// the run and nothing is written.
package wordlist
