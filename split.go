package trimatch

import (
	"iter"

	"github.com/tigerwill90/trimatch/internal/stringutil"
)

// splitIndex indexes patterns made of a prefix and a postfix. Prefixes live in a trie whose
// values are the groups of postfixes registered under each prefix; every group is itself a
// trie keyed by reversed postfix.
//
// For example, the wildcard patterns "src/*", "src/*.go" and "src/*_test.go" are stored as:
//
//	prefixes: "src/" -> group
//	group:    ""       -> "src/*"
//	          "og."    -> "src/*.go"
//	          "og.tset_" -> "src/*_test.go"
type splitIndex[V any] struct {
	prefixes Trie[*postfixGroup[V]]
	size     int
}

type postfixGroup[V any] struct {
	prefix   string
	reversed Trie[postfixEntry[V]]
}

type postfixEntry[V any] struct {
	postfix string
	value   V
}

type splitMatch[V any] struct {
	prefix  string
	postfix string
	value   V
}

// matched returns the part of s covered by neither the prefix nor the postfix. It is empty
// when the prefix and the postfix overlap in s.
func (m splitMatch[V]) matched(s string) string {
	if len(m.prefix)+len(m.postfix) > len(s) {
		return ""
	}
	return s[len(m.prefix) : len(s)-len(m.postfix)]
}

func (x *splitIndex[V]) add(prefix, postfix string, value V) {
	group, ok := x.prefixes.Lookup(prefix)
	if !ok {
		group = &postfixGroup[V]{prefix: prefix}
		x.prefixes.Insert(prefix, group)
	}
	if group.reversed.insertSeq(stringutil.BackwardRunes(postfix), postfixEntry[V]{postfix, value}) {
		x.size++
	}
}

func (x *splitIndex[V]) lookup(prefix, postfix string) (value V, ok bool) {
	group, found := x.prefixes.Lookup(prefix)
	if !found {
		return
	}
	entry, found := group.reversed.lookupSeq(stringutil.BackwardRunes(postfix))
	if !found {
		return
	}
	return entry.value, true
}

// best selects the pattern with the longest prefix of s that has at least one postfix of s,
// then the longest such postfix. Prefixes are visited from the shortest to the longest and
// each hit replaces the previous one, so a longer prefix always wins over a shorter one even
// when the shorter one pairs with a longer postfix.
//
// Postfixes are matched against the whole of s, so a prefix and a postfix may overlap:
// "a*a" matches "a".
func (x *splitIndex[V]) best(s string) (splitMatch[V], bool) {
	var (
		best  splitMatch[V]
		found bool
	)
	for _, group := range x.prefixes.MatchPrefixes(s) {
		entry, ok := group.reversed.bestPrefixSeq(stringutil.BackwardRunes(s))
		if !ok {
			continue
		}
		best = splitMatch[V]{
			prefix:  group.prefix,
			postfix: entry.postfix,
			value:   entry.value,
		}
		found = true
	}
	return best, found
}

// all returns every registered pattern, ordered by prefix then by reversed postfix.
func (x *splitIndex[V]) all() iter.Seq[splitMatch[V]] {
	return func(yield func(splitMatch[V]) bool) {
		for group := range x.prefixes.Values() {
			for entry := range group.reversed.Values() {
				if !yield(splitMatch[V]{prefix: group.prefix, postfix: entry.postfix, value: entry.value}) {
					return
				}
			}
		}
	}
}

func (x *splitIndex[V]) len() int {
	return x.size
}
