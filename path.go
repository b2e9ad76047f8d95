package trimatch

import "strings"

// FullExtension returns the full extension of a slash separated path: everything from the
// first dot of the last path element, dots included. It returns an empty string when the
// last element has no dot.
//
//	FullExtension("/src/.hide/index.doc.html") // ".doc.html"
//	FullExtension("/src/.hide/index.")         // "."
//	FullExtension("/src/.hide/index")          // ""
//
// The result is meant to be matched against a [PostfixMatcher] or [WildcardMatcher].
func FullExtension(path string) string {
	base := path[strings.LastIndexByte(path, '/')+1:]
	idx := strings.IndexByte(base, '.')
	if idx < 0 {
		return ""
	}
	return base[idx:]
}
