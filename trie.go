// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/trimatch/blob/master/LICENSE.txt.

package trimatch

import (
	"iter"

	"github.com/tigerwill90/trimatch/internal/iterutil"
	"github.com/tigerwill90/trimatch/internal/stringutil"
)

// Trie is a rune indexed prefix tree associating a value of type T with each inserted key.
// Keys are walked one Unicode code point at a time, so a multi-byte character is a single
// edge. Any byte string is a valid key: each invalid UTF-8 byte is an edge of its own,
// distinct from every character.
//
// The zero value is an empty trie ready to use. A Trie is not safe for concurrent use when
// at least one goroutine calls Insert; lookups alone may run concurrently.
type Trie[T any] struct {
	root *node[T]
	size int
}

// NewTrie returns an empty Trie.
func NewTrie[T any]() *Trie[T] {
	return &Trie[T]{root: new(node[T])}
}

// Insert associates value with key, overwriting the value of a previous insertion of the
// same key. Any key is valid, the empty key marks the root as terminal.
func (t *Trie[T]) Insert(key string, value T) {
	t.insertSeq(stringutil.Runes(key), value)
}

// Lookup returns the value associated with key, only if key was inserted verbatim.
func (t *Trie[T]) Lookup(key string) (T, bool) {
	return t.lookupSeq(stringutil.Runes(key))
}

// MatchPrefixes returns the value of every inserted key that is a prefix of query, ordered
// from the shortest key to the longest.
func (t *Trie[T]) MatchPrefixes(query string) []T {
	return t.matchPrefixesSeq(stringutil.Runes(query))
}

// BestPrefix returns the value of the longest inserted key that is a prefix of query. It is
// the last element that MatchPrefixes would return.
func (t *Trie[T]) BestPrefix(query string) (T, bool) {
	return t.bestPrefixSeq(stringutil.Runes(query))
}

// Len returns the number of keys in the trie.
func (t *Trie[T]) Len() int {
	return t.size
}

// All returns a sequence of every key and its value, in ascending rune order.
func (t *Trie[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		if t.root == nil {
			return
		}
		if t.root.isLeaf() && !yield("", t.root.leaf.value) {
			return
		}
		it := newIterator(t.root)
		for it.hasNextLeaf() {
			if !yield(it.fullKey(), it.node().leaf.value) {
				return
			}
		}
	}
}

// Keys returns a sequence of every key, in ascending rune order.
func (t *Trie[T]) Keys() iter.Seq[string] {
	return iterutil.Left(t.All())
}

// Values returns a sequence of every value, ordered by key.
func (t *Trie[T]) Values() iter.Seq[T] {
	return iterutil.Right(t.All())
}

func (t *Trie[T]) String() string {
	if t.root == nil {
		return "root\n"
	}
	return t.root.String()
}

// insertSeq inserts the key spelled by seq and reports whether the key was new.
func (t *Trie[T]) insertSeq(seq iter.Seq[rune], value T) bool {
	if t.root == nil {
		t.root = new(node[T])
	}

	current := t.root
	for r := range seq {
		child := current.getEdge(r)
		if child == nil {
			child = &node[T]{label: r}
			current.addEdge(child)
		}
		current = child
	}

	added := !current.isLeaf()
	if added {
		t.size++
	}
	current.leaf = &leaf[T]{value: value}
	return added
}

func (t *Trie[T]) lookupSeq(seq iter.Seq[rune]) (value T, ok bool) {
	current := t.root
	if current == nil {
		return
	}
	for r := range seq {
		current = current.getEdge(r)
		if current == nil {
			return
		}
	}
	if !current.isLeaf() {
		return
	}
	return current.leaf.value, true
}

func (t *Trie[T]) matchPrefixesSeq(seq iter.Seq[rune]) []T {
	current := t.root
	if current == nil {
		return nil
	}

	var values []T
	if current.isLeaf() {
		values = append(values, current.leaf.value)
	}
	for r := range seq {
		current = current.getEdge(r)
		if current == nil {
			break
		}
		if current.isLeaf() {
			values = append(values, current.leaf.value)
		}
	}
	return values
}

func (t *Trie[T]) bestPrefixSeq(seq iter.Seq[rune]) (value T, ok bool) {
	current := t.root
	if current == nil {
		return
	}

	if current.isLeaf() {
		value, ok = current.leaf.value, true
	}
	for r := range seq {
		current = current.getEdge(r)
		if current == nil {
			break
		}
		if current.isLeaf() {
			value, ok = current.leaf.value, true
		}
	}
	return
}
