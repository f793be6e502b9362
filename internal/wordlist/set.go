package wordlist

import "sort"

// Set is an unordered collection of normalized words.
type Set map[string]struct{}

// NewSet returns a set holding words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts word and reports whether it was new.
func (s Set) Add(word string) bool {
	if _, ok := s[word]; ok {
		return false
	}
	s[word] = struct{}{}
	return true
}

// Has reports whether word is in the set.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words.
func (s Set) Len() int {
	return len(s)
}

// Union adds every word of other to s and returns how many were new.
func (s Set) Union(other Set) int {
	added := 0
	for w := range other {
		if s.Add(w) {
			added++
		}
	}
	return added
}

// Words returns the members as a slice. Unsorted output follows map iteration order.
func (s Set) Words(sorted bool) []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	if sorted {
		sort.Strings(words)
	}
	return words
}
