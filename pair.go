package trimatch

import (
	"iter"

	"github.com/tigerwill90/trimatch/internal/iterutil"
)

// Pair is a pattern given as a prefix and a postfix. It matches any string starting with
// Prefix and ending with Postfix, where the two do not overlap.
type Pair struct {
	Prefix  string `yaml:"prefix"`
	Postfix string `yaml:"postfix"`
}

func (p Pair) String() string {
	return p.Prefix + string(DefaultWildcard) + p.Postfix
}

// PairMatch describes how a string matched a [PairMatcher] pattern.
type PairMatch struct {
	Pair
	// Matched is the part of the string between the prefix and the postfix.
	Matched string
}

// PairMatcher stores prefix and postfix pairs. It selects matches like [WildcardMatcher]:
// the longest prefix with at least one matching postfix wins, then the longest postfix.
// There is no exact pattern and no wildcard parsing.
//
// A PairMatcher is not safe for concurrent use when Add may run concurrently with lookups.
type PairMatcher struct {
	index splitIndex[Pair]
}

// NewPairMatcher returns a PairMatcher holding the given pairs.
func NewPairMatcher(pairs ...Pair) *PairMatcher {
	m := new(PairMatcher)
	for _, pair := range pairs {
		m.Add(pair)
	}
	return m
}

// Add registers a pair.
func (m *PairMatcher) Add(pair Pair) {
	m.index.add(pair.Prefix, pair.Postfix, pair)
}

// MatchBest returns the best pair matching s. The boolean is false when no pair matches.
func (m *PairMatcher) MatchBest(s string) (Pair, bool) {
	match, ok := m.index.best(s)
	if !ok {
		return Pair{}, false
	}
	return match.value, true
}

// MatchBestEx is like MatchBest but also reports the part of s between the prefix and
// the postfix.
func (m *PairMatcher) MatchBestEx(s string) (PairMatch, bool) {
	match, ok := m.index.best(s)
	if !ok {
		return PairMatch{}, false
	}
	return PairMatch{Pair: match.value, Matched: match.matched(s)}, true
}

// Has reports whether pair was registered.
func (m *PairMatcher) Has(pair Pair) bool {
	_, ok := m.index.lookup(pair.Prefix, pair.Postfix)
	return ok
}

// Pairs returns a sequence of the registered pairs grouped by prefix.
func (m *PairMatcher) Pairs() iter.Seq[Pair] {
	return iterutil.Map(m.index.all(), func(match splitMatch[Pair]) Pair {
		return match.value
	})
}

// Len returns the number of distinct registered pairs.
func (m *PairMatcher) Len() int {
	return m.index.len()
}
