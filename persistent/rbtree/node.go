package rbtree

import (
	"fmt"
	"strings"
)

// Comparator is a total order over T. It returns a negative number if a
// orders before b, a positive number if a orders after b, and 0 if both are
// to be treated as the same element.
type Comparator[T any] func(a, b T) int

// Color is the balancing tag of a tree node. The empty tree counts as Black.
type Color bool

const (
	Red   Color = false
	Black Color = true
)

func (c Color) String() string {
	if c == Black {
		return "B"
	}
	return "R"
}

// node is the recursive structure trees are made of. Exactly two shapes
// exist: the leaf, represented by a nil *node, and the colored node carrying
// a value and two children. Nodes are never modified after construction.
type node[T any] struct {
	color Color
	left  *node[T]
	value T
	right *node[T]
}

func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == Red
}

// paint returns n re-colored to c. If n already has color c (or is a leaf),
// n itself is returned and no node is allocated.
func (n *node[T]) paint(c Color) *node[T] {
	if n == nil || n.color == c {
		return n
	}
	return &node[T]{color: c, left: n.left, value: n.value, right: n.right}
}

// blackHeight counts the black nodes on the leftmost path from n down to a
// leaf. The balance invariant guarantees that every root-to-leaf path of n
// yields this same count.
func blackHeight[T any](n *node[T]) int {
	h := 0
	for ; n != nil; n = n.left {
		if n.color == Black {
			h++
		}
	}
	return h
}

// minimum returns the smallest value in n. n must not be a leaf.
func minimum[T any](n *node[T]) T {
	for n.left != nil {
		n = n.left
	}
	return n.value
}

// maximum returns the largest value in n. n must not be a leaf.
func maximum[T any](n *node[T]) T {
	for n.right != nil {
		n = n.right
	}
	return n.value
}

func size[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return size(n.left) + 1 + size(n.right)
}

// lisp renders n in the diagnostic format used by the tests,
// e.g. "(B:4 (B:2 R:1) B:5)". Empty children are omitted.
func (n *node[T]) lisp() string {
	tag := fmt.Sprintf("%s:%v", n.color, n.value)
	if n.left == nil && n.right == nil {
		return tag
	}
	b := strings.Builder{}
	b.WriteByte('(')
	b.WriteString(tag)
	if n.left != nil {
		b.WriteByte(' ')
		b.WriteString(n.left.lisp())
	}
	if n.right != nil {
		b.WriteByte(' ')
		b.WriteString(n.right.lisp())
	}
	b.WriteByte(')')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		panic(msg)
	}
}
