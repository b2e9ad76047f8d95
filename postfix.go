package trimatch

import (
	"iter"

	"github.com/tigerwill90/trimatch/internal/stringutil"
)

// PostfixMatcher stores string postfixes and finds the ones a string ends with. Postfixes
// are kept in a trie keyed by their reversed runes, and queries are walked backward, which
// turns postfix matching into prefix matching. The trie values are the postfixes as
// registered, so results never need to be reversed back.
//
// A PostfixMatcher is not safe for concurrent use when Add may run concurrently with lookups.
type PostfixMatcher struct {
	reversed Trie[string]
}

// NewPostfixMatcher returns a PostfixMatcher holding the given postfixes.
func NewPostfixMatcher(postfixes ...string) *PostfixMatcher {
	m := new(PostfixMatcher)
	for _, postfix := range postfixes {
		m.Add(postfix)
	}
	return m
}

// Add registers a postfix. Adding the empty postfix makes every string match.
func (m *PostfixMatcher) Add(postfix string) {
	m.reversed.insertSeq(stringutil.BackwardRunes(postfix), postfix)
}

// MatchAll returns every registered postfix of s, from the shortest to the longest.
func (m *PostfixMatcher) MatchAll(s string) []string {
	return m.reversed.matchPrefixesSeq(stringutil.BackwardRunes(s))
}

// MatchBest returns the longest registered postfix of s. The boolean is false when
// no postfix matches.
func (m *PostfixMatcher) MatchBest(s string) (string, bool) {
	return m.reversed.bestPrefixSeq(stringutil.BackwardRunes(s))
}

// Has reports whether postfix was registered.
func (m *PostfixMatcher) Has(postfix string) bool {
	_, ok := m.reversed.lookupSeq(stringutil.BackwardRunes(postfix))
	return ok
}

// Postfixes returns a sequence of the registered postfixes, ordered by their reversed form.
func (m *PostfixMatcher) Postfixes() iter.Seq[string] {
	return m.reversed.Values()
}

// Len returns the number of distinct registered postfixes.
func (m *PostfixMatcher) Len() int {
	return m.reversed.Len()
}
