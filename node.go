package trimatch

import (
	"sort"
	"strings"
)

// node is a trie vertex reached through a single rune edge.
type node[T any] struct {
	// Child nodes sorted by label in ascending order.
	children []*node[T]

	// The value of the key ending at this node. Nil if the node is not terminal.
	leaf *leaf[T]

	// The rune on the edge coming from the parent. Zero for the root.
	label rune
}

// leaf holds the value of a terminal node. A node carries a leaf if and only if
// a key ends there, so an internal node cannot hold a value.
type leaf[T any] struct {
	value T
}

func (n *node[T]) isLeaf() bool {
	return n.leaf != nil
}

func (n *node[T]) getEdge(label rune) *node[T] {
	if len(n.children) <= 4 {
		for _, child := range n.children {
			if child.label == label {
				return child
			}
		}
		return nil
	}
	num := len(n.children)
	idx := sort.Search(num, func(i int) bool { return n.children[i].label >= label })
	if idx < num && n.children[idx].label == label {
		return n.children[idx]
	}
	return nil
}

func (n *node[T]) addEdge(child *node[T]) {
	num := len(n.children)
	idx := sort.Search(num, func(i int) bool {
		return n.children[i].label >= child.label
	})
	n.children = append(n.children, child)
	if idx != num {
		copy(n.children[idx+1:], n.children[idx:num])
		n.children[idx] = child
	}
}

func (n *node[T]) String() string {
	return n.string(0)
}

func (n *node[T]) string(space int) string {
	sb := strings.Builder{}
	sb.WriteString(strings.Repeat(" ", space))
	if space == 0 {
		sb.WriteString("root")
	} else {
		sb.WriteString("edge: ")
		sb.WriteRune(n.label)
	}
	if n.isLeaf() {
		sb.WriteString(" (leaf)")
	}

	sb.WriteByte('\n')
	for _, child := range n.children {
		sb.WriteString(child.string(space + 2))
	}
	return sb.String()
}
