// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/trimatch/blob/master/LICENSE.txt.

package trimatch

import (
	"errors"
	"iter"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/tigerwill90/trimatch/internal/iterutil"
)

// Match describes how a string matched a [WildcardMatcher] pattern.
type Match struct {
	// Pattern is the registered pattern.
	Pattern string
	// Prefix is the part of the pattern before the wildcard. For an exact match, it is the
	// whole matched string.
	Prefix string
	// Postfix is the part of the pattern after the wildcard. Empty for an exact match.
	Postfix string
	// Matched is the part of the string the wildcard stood for. Empty for an exact match.
	Matched string
}

// WildcardMatcher stores exact patterns and patterns holding a single wildcard character,
// which stands for any span of characters, including an empty one. For example, "src/*.go"
// matches "src/main.go" and "src/.go".
//
// Exact patterns always take precedence. Otherwise, the pattern with the longest prefix
// before the wildcard wins, and among patterns sharing that prefix, the one with the longest
// postfix after the wildcard. Note that this is not the pattern with the most literal
// characters overall: with "a*" and "*bcd", the string "abcd" matches "a*".
//
// A WildcardMatcher is not safe for concurrent use when Add may run concurrently with lookups.
type WildcardMatcher struct {
	cfg    *config
	exacts map[string]struct{}
	index  splitIndex[string]
}

// NewWildcardMatcher returns a WildcardMatcher holding the given patterns. Each pattern is
// added independently: when some patterns are invalid, the returned matcher holds all the
// valid ones and the error joins one [InvalidPatternError] per rejected pattern. An invalid
// option returns a nil matcher and an error that is [ErrInvalidConfig].
func NewWildcardMatcher(patterns []string, opts ...WildcardOption) (*WildcardMatcher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.applyWildcard(cfg); err != nil {
			return nil, err
		}
	}

	m := &WildcardMatcher{
		cfg:    cfg,
		exacts: make(map[string]struct{}),
	}

	var errs []error
	for _, pattern := range patterns {
		if err := m.Add(pattern); err != nil {
			errs = append(errs, err)
		}
	}

	return m, errors.Join(errs...)
}

// Add registers a pattern. A pattern without wildcard is matched exactly. A pattern holding
// the wildcard character more than once is rejected with an [InvalidPatternError] and the
// matcher is left unchanged.
func (m *WildcardMatcher) Add(pattern string) error {
	prefix, postfix, wild, err := splitWildcard(pattern, m.cfg.wildcard)
	if err != nil {
		logRejected(m.cfg.logger, pattern, err)
		return err
	}

	if !wild {
		m.exacts[pattern] = struct{}{}
		logRegistered(m.cfg.logger, kindExact, pattern)
		return nil
	}

	m.index.add(prefix, postfix, pattern)
	logRegistered(m.cfg.logger, kindWildcard, pattern)
	return nil
}

// MatchBest returns the best pattern matching s. The boolean is false when no pattern
// matches. Registering the empty pattern or a lone wildcard makes every string match.
func (m *WildcardMatcher) MatchBest(s string) (string, bool) {
	if _, ok := m.exacts[s]; ok {
		return s, true
	}

	match, ok := m.index.best(s)
	if !ok {
		return "", false
	}
	return match.value, true
}

// MatchBestEx is like MatchBest but also reports the pattern prefix and postfix, and the
// part of s the wildcard stood for.
func (m *WildcardMatcher) MatchBestEx(s string) (Match, bool) {
	if _, ok := m.exacts[s]; ok {
		return Match{Pattern: s, Prefix: s}, true
	}

	match, ok := m.index.best(s)
	if !ok {
		return Match{}, false
	}
	return Match{
		Pattern: match.value,
		Prefix:  match.prefix,
		Postfix: match.postfix,
		Matched: match.matched(s),
	}, true
}

// Has reports whether pattern was registered.
func (m *WildcardMatcher) Has(pattern string) bool {
	prefix, postfix, wild, err := splitWildcard(pattern, m.cfg.wildcard)
	if err != nil {
		return false
	}
	if !wild {
		_, ok := m.exacts[pattern]
		return ok
	}
	_, ok := m.index.lookup(prefix, postfix)
	return ok
}

// Patterns returns a sequence of the registered patterns: exact patterns first, in
// ascending order, then wildcard patterns grouped by prefix.
func (m *WildcardMatcher) Patterns() iter.Seq[string] {
	return iterutil.Concat(
		slices.Values(slices.Sorted(maps.Keys(m.exacts))),
		iterutil.Map(m.index.all(), func(match splitMatch[string]) string {
			return match.value
		}),
	)
}

// Len returns the number of distinct registered patterns.
func (m *WildcardMatcher) Len() int {
	return len(m.exacts) + m.index.len()
}

// Wildcard returns the wildcard character of the matcher.
func (m *WildcardMatcher) Wildcard() rune {
	return m.cfg.wildcard
}

// splitWildcard splits pattern around its wildcard character. The boolean is false when
// pattern has no wildcard.
func splitWildcard(pattern string, wildcard rune) (prefix, postfix string, wild bool, err error) {
	idx := strings.IndexRune(pattern, wildcard)
	if idx < 0 {
		return "", "", false, nil
	}

	if n := strings.Count(pattern, string(wildcard)); n > 1 {
		return "", "", false, &InvalidPatternError{
			Pattern:  pattern,
			Wildcard: wildcard,
			Count:    n,
		}
	}

	return pattern[:idx], pattern[idx+utf8.RuneLen(wildcard):], true, nil
}
