package wordlist

import (
	"regexp"
	"strings"
)

// tokenPattern matches maximal runs of ASCII letters, hyphen, period, apostrophe, and slash.
var tokenPattern = regexp.MustCompile(`[A-Za-z\-.'/]+`)

// Extract returns every maximal token in text, in order of appearance.
func Extract(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Normalize removes every byte that is not an ASCII letter and lowercases the rest.
// The result is empty when token has no letters.
func Normalize(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		switch {
		case c >= 'a' && c <= 'z':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// Words extracts and normalizes every token in text. Duplicates are kept.
func Words(text string) []string {
	tokens := Extract(text)
	words := make([]string, len(tokens))
	for i, token := range tokens {
		words[i] = Normalize(token)
	}
	return words
}
