package iterutil

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStringSeq(t *testing.T) {
	cases := []struct {
		name    string
		s       string
		sep     string
		want    []string
		wantLen int
	}{
		{
			name:    "split all empty",
			s:       "",
			sep:     ",",
			want:    []string{""},
			wantLen: 1,
		},
		{
			name:    "split empty segment",
			s:       "prefix,,dir",
			sep:     ",",
			want:    []string{"prefix", "", "dir"},
			wantLen: 3,
		},
		{
			name:    "split all",
			s:       "prefix,postfix,wildcard",
			sep:     ",",
			want:    []string{"prefix", "postfix", "wildcard"},
			wantLen: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := slices.Collect(SplitStringSeq(tc.s, tc.sep))
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantLen, len(got))
		})
	}

	t.Run("break", func(t *testing.T) {
		k := 0
		parts := make([]string, 0, 1)
		for part := range SplitStringSeq("1,2,3", ",") {
			if k > 0 {
				break
			}
			parts = append(parts, part)
			k++
		}
		assert.Equal(t, []string{"1"}, parts)
	})
}

func TestLast(t *testing.T) {
	last, ok := Last(slices.Values([]string{"", "hell", "hellow"}))
	assert.True(t, ok)
	assert.Equal(t, "hellow", last)

	last, ok = Last(slices.Values([]string(nil)))
	assert.False(t, ok)
	assert.Equal(t, "", last)
}

func TestAtAndTake(t *testing.T) {
	seq := slices.Values([]int{1, 2, 3, 4})

	v, ok := At(seq, 2)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = At(seq, 10)
	assert.False(t, ok)

	assert.Equal(t, []int{1, 2}, slices.Collect(Take(seq, 2)))
	assert.Empty(t, slices.Collect(Take(seq, 0)))
	assert.Panics(t, func() {
		At(seq, -1)
	})
}

func TestLeftRightConcat(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	assert.ElementsMatch(t, []string{"a", "b"}, slices.Collect(Left(maps.All(m))))
	assert.ElementsMatch(t, []int{1, 2}, slices.Collect(Right(maps.All(m))))

	got := slices.Collect(Concat(slices.Values([]int{1}), slices.Values([]int{2, 3})))
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 3, Len(slices.Values(got)))
	assert.Equal(t, []int{2, 4, 6}, slices.Collect(Map(slices.Values(got), func(i int) int { return i * 2 })))
}
