package trimatch

import "github.com/tigerwill90/trimatch/internal/stringutil"

func newIterator[T any](n *node[T]) *iterator[T] {
	return &iterator[T]{
		stack: []stack[T]{{edges: n.children}},
	}
}

// iterator walks a trie depth first with an explicit stack, so that very long keys
// cannot exhaust the goroutine stack. The key of the current node is kept in a single
// buffer shared by all stack frames.
type iterator[T any] struct {
	stack   []stack[T]
	current *node[T]
	path    []byte
}

type stack[T any] struct {
	// Length of the path leading to edges.
	depth int
	edges []*node[T]
}

func (it *iterator[T]) fullKey() string {
	return string(it.path)
}

func (it *iterator[T]) node() *node[T] {
	return it.current
}

func (it *iterator[T]) hasNextLeaf() bool {
	for it.hasNext() {
		if it.current.isLeaf() {
			return true
		}
	}
	return false
}

func (it *iterator[T]) hasNext() bool {
	for len(it.stack) > 0 {
		n := len(it.stack)
		last := it.stack[n-1]
		if len(last.edges) == 0 {
			it.stack = it.stack[:n-1]
			continue
		}
		elem := last.edges[0]

		if len(last.edges) > 1 {
			it.stack[n-1].edges = last.edges[1:]
		} else {
			it.stack = it.stack[:n-1]
		}

		it.path = stringutil.AppendRune(it.path[:last.depth], elem.label)
		if len(elem.children) > 0 {
			it.stack = append(it.stack, stack[T]{len(it.path), elem.children})
		}

		it.current = elem
		return true
	}

	it.current = nil
	it.path = it.path[:0]
	return false
}
