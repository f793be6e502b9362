// Package textutil turns raw source bytes into text.
//
// Books arrive in whatever encoding their publisher used. LookupEncoding maps a
// configured name onto a golang.org/x/text encoding and Decode converts the
// bytes to UTF-8, dropping any byte order mark so it never leaks into the first
// token of a file.
package textutil
