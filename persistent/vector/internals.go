package vector

import (
	"fmt"
	"strings"
)

// vnode represents a node in the trie a vector is made of: either an inner
// node carrying child links, or a leaf carrying a bucket of elements.
type vnode[T any] struct {
	leaf     bool
	children []*vnode[T]
	leafs    []T
}

func emptyNode[T any](degree uint32) *vnode[T] {
	return &vnode[T]{
		children: make([]*vnode[T], degree),
	}
}

// newLeaf wraps a (full) tail buffer into a leaf node. The buffer is shared,
// not copied; callers hand over ownership.
func newLeaf[T any](tail []T) *vnode[T] {
	return &vnode[T]{
		leaf:  true,
		leafs: tail,
	}
}

// newPath builds a chain of inner nodes from the given level down to a leaf
// holding tail, each node linking through its first child.
func newPath[T any](level uint32, p props, tail []T) *vnode[T] {
	node := newLeaf(tail)
	for ; level > 0; level -= p.bits {
		wrapper := emptyNode[T](p.degree)
		wrapper.children[0] = node
		node = wrapper
	}
	return node
}

func (node *vnode[T]) clone() *vnode[T] {
	if node.leaf {
		leafs := make([]T, len(node.leafs))
		copy(leafs, node.leafs)
		return &vnode[T]{leaf: true, leafs: leafs}
	}
	children := make([]*vnode[T], len(node.children))
	copy(children, node.children)
	return &vnode[T]{children: children}
}

func (node *vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leaf {
		for i, l := range node.leafs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// eachLeaf walks the leaf buckets of the trie in index order, calling f for
// each, until f returns false.
func eachLeaf[T any](node *vnode[T], f func([]T) bool) bool {
	if node == nil {
		return true
	}
	if node.leaf {
		return f(node.leafs)
	}
	for _, child := range node.children {
		if child == nil {
			return true // children are filled left to right
		}
		if !eachLeaf(child, f) {
			return false
		}
	}
	return true
}

func cloneTail[T any](tail []T, length int) []T {
	newTail := make([]T, length)
	copy(newTail, tail)
	return newTail
}

// capacity is the number of elements a subtree of the given height can hold
// with nodes of degree k.
func capacity(k, height int) int {
	if height == 0 {
		return 0
	}
	c := 1
	for i := 0; i < height; i++ {
		c *= k
	}
	return c
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
