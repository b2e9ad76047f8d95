package trimatch

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/tigerwill90/trimatch/internal/iterutil"
)

// DirMatcher stores directory patterns, which end with the separator character and match
// every path below them, and exact patterns, which match only themselves. With the default
// separator, "src/" matches "src/main.go" and "src/", while "src" only matches "src".
//
// Exact patterns always take precedence over directory patterns. Among directory patterns,
// the longest one wins.
//
// A DirMatcher is not safe for concurrent use when Add may run concurrently with lookups.
type DirMatcher struct {
	cfg      *config
	exacts   map[string]struct{}
	prefixes PrefixMatcher
}

// NewDirMatcher returns a DirMatcher holding the given patterns. An invalid option returns
// an error that is [ErrInvalidConfig].
func NewDirMatcher(patterns []string, opts ...DirOption) (*DirMatcher, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt.applyDir(cfg); err != nil {
			return nil, err
		}
	}

	m := &DirMatcher{
		cfg:    cfg,
		exacts: make(map[string]struct{}),
	}
	for _, pattern := range patterns {
		m.Add(pattern)
	}
	return m, nil
}

// Add registers a pattern. A pattern ending with the separator is a directory pattern,
// registered with its trailing separator. Any other pattern is exact.
func (m *DirMatcher) Add(pattern string) {
	if m.isDir(pattern) {
		m.prefixes.Add(pattern)
		logRegistered(m.cfg.logger, kindDir, pattern)
		return
	}
	m.exacts[pattern] = struct{}{}
	logRegistered(m.cfg.logger, kindExact, pattern)
}

// MatchBest returns the exact pattern equal to s or, failing that, the longest directory
// pattern s starts with. The boolean is false when no pattern matches.
func (m *DirMatcher) MatchBest(s string) (string, bool) {
	if _, ok := m.exacts[s]; ok {
		return s, true
	}
	return m.prefixes.MatchBest(s)
}

// Has reports whether pattern was registered.
func (m *DirMatcher) Has(pattern string) bool {
	if m.isDir(pattern) {
		return m.prefixes.Has(pattern)
	}
	_, ok := m.exacts[pattern]
	return ok
}

// Patterns returns a sequence of the registered patterns: exact patterns first, then
// directory patterns, each in ascending order.
func (m *DirMatcher) Patterns() iter.Seq[string] {
	return iterutil.Concat(
		slices.Values(slices.Sorted(maps.Keys(m.exacts))),
		m.prefixes.Prefixes(),
	)
}

// Len returns the number of distinct registered patterns.
func (m *DirMatcher) Len() int {
	return len(m.exacts) + m.prefixes.Len()
}

// Separator returns the separator character of the matcher.
func (m *DirMatcher) Separator() rune {
	return m.cfg.separator
}

func (m *DirMatcher) isDir(pattern string) bool {
	return strings.HasSuffix(pattern, string(m.cfg.separator))
}
