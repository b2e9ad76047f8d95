package trimatch

// Matcher finds the best registered pattern matching a string. It is implemented by
// [PrefixMatcher], [PostfixMatcher], [WildcardMatcher] and [DirMatcher].
type Matcher interface {
	// MatchBest returns the best pattern matching s. The boolean is false when no
	// pattern matches, which is distinct from matching the empty pattern.
	MatchBest(s string) (string, bool)
	// Len returns the number of distinct registered patterns.
	Len() int
}

var (
	_ Matcher = (*PrefixMatcher)(nil)
	_ Matcher = (*PostfixMatcher)(nil)
	_ Matcher = (*WildcardMatcher)(nil)
	_ Matcher = (*DirMatcher)(nil)
)

// Extension returns a lookup applying m to the full extension of a path, as returned by
// [FullExtension].
func Extension(m Matcher) func(path string) (string, bool) {
	return func(path string) (string, bool) {
		return m.MatchBest(FullExtension(path))
	}
}
