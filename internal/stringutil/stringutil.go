package stringutil

import (
	"iter"
	"unicode/utf8"
)

// ByteRune returns the label standing for the invalid UTF-8 byte b. Labels of invalid
// bytes are negative, so they never collide with a character, utf8.RuneError included.
func ByteRune(b byte) rune {
	return -1 - rune(b)
}

// AppendRune appends the UTF-8 encoding of r to p, or the raw byte when r is a label
// returned by ByteRune.
func AppendRune(p []byte, r rune) []byte {
	if r < 0 {
		return append(p, byte(-1-r))
	}
	return utf8.AppendRune(p, r)
}

// Runes yields the runes of s from first to last. Invalid UTF-8 bytes are yielded one
// at a time as ByteRune labels.
func Runes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			if r == utf8.RuneError && size == 1 {
				r = ByteRune(s[0])
			}
			if !yield(r) {
				return
			}
			s = s[size:]
		}
	}
}

// BackwardRunes yields the runes of s from last to first, in the exact reverse order of
// Runes. Each step decodes a whole code point, so multi-byte characters are never split.
func BackwardRunes(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for len(s) > 0 {
			r, size := utf8.DecodeLastRuneInString(s)
			if r == utf8.RuneError && size == 1 {
				r = ByteRune(s[len(s)-1])
			}
			if !yield(r) {
				return
			}
			s = s[:len(s)-size]
		}
	}
}

// Reverse returns s with its runes in reverse order. Invalid bytes are kept as is.
func Reverse(s string) string {
	buf := make([]byte, 0, len(s))
	for r := range BackwardRunes(s) {
		buf = AppendRune(buf, r)
	}
	return string(buf)
}
