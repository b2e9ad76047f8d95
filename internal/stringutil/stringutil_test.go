package stringutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackwardRunes(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want []rune
	}{
		{"empty string", "", nil},
		{"ascii", "abc", []rune{'c', 'b', 'a'}},
		{"two bytes runes", "héé", []rune{'é', 'é', 'h'}},
		{"mixed widths", "a€𝄞", []rune{'𝄞', '€', 'a'}},
		{"invalid bytes", "a\xff\xe2\x82", []rune{ByteRune(0x82), ByteRune(0xe2), ByteRune(0xff), 'a'}},
		{"replacement char", "\uFFFD\xff", []rune{ByteRune(0xff), '\uFFFD'}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slices.Collect(BackwardRunes(tc.s)))
		})
	}
}

func TestRunes(t *testing.T) {
	assert.Equal(t, []rune{'a', '€', '𝄞'}, slices.Collect(Runes("a€𝄞")))
	assert.Empty(t, slices.Collect(Runes("")))
	assert.Equal(t, []rune{'\uFFFD', ByteRune(0xff), 'a'}, slices.Collect(Runes("\uFFFD\xffa")))
}

func TestByteRune(t *testing.T) {
	seen := make(map[rune]struct{})
	for b := 0; b < 256; b++ {
		r := ByteRune(byte(b))
		assert.Negative(t, r)
		assert.Equal(t, []byte{byte(b)}, AppendRune(nil, r))
		seen[r] = struct{}{}
	}
	assert.Len(t, seen, 256)
	assert.Equal(t, []byte("é"), AppendRune(nil, 'é'))
}

func TestBackwardRunesStopEarly(t *testing.T) {
	var got []rune
	for r := range BackwardRunes("hello") {
		got = append(got, r)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []rune{'o', 'l'}, got)
}

func TestReverse(t *testing.T) {
	cases := []struct {
		name string
		s    string
		want string
	}{
		{"empty string", "", ""},
		{"single char", "a", "a"},
		{"ascii", ".doc.html", "lmth.cod."},
		{"multi bytes", "añ€𝄞z", "z𝄞€ña"},
		{"invalid bytes", "a\xe2\x82\xff", "\xff\x82\xe2a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reverse(tc.s)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.s, Reverse(got))
		})
	}
}
