package trimatch

import (
	"iter"
)

// PrefixMatcher stores string prefixes and finds the ones a string starts with, in time
// proportional to the length of the string.
//
// A PrefixMatcher is not safe for concurrent use when Add may run concurrently with lookups.
type PrefixMatcher struct {
	trie Trie[string]
}

// NewPrefixMatcher returns a PrefixMatcher holding the given prefixes.
func NewPrefixMatcher(prefixes ...string) *PrefixMatcher {
	m := new(PrefixMatcher)
	for _, prefix := range prefixes {
		m.Add(prefix)
	}
	return m
}

// Add registers a prefix. Adding the empty prefix makes every string match.
func (m *PrefixMatcher) Add(prefix string) {
	m.trie.Insert(prefix, prefix)
}

// MatchAll returns every registered prefix of s, from the shortest to the longest.
func (m *PrefixMatcher) MatchAll(s string) []string {
	return m.trie.MatchPrefixes(s)
}

// MatchBest returns the longest registered prefix of s. The boolean is false when
// no prefix matches.
func (m *PrefixMatcher) MatchBest(s string) (string, bool) {
	return m.trie.BestPrefix(s)
}

// Has reports whether prefix was registered.
func (m *PrefixMatcher) Has(prefix string) bool {
	_, ok := m.trie.Lookup(prefix)
	return ok
}

// Prefixes returns a sequence of the registered prefixes in ascending order.
func (m *PrefixMatcher) Prefixes() iter.Seq[string] {
	return m.trie.Values()
}

// Len returns the number of distinct registered prefixes.
func (m *PrefixMatcher) Len() int {
	return m.trie.Len()
}
