package rbtree

import (
	"errors"
)

// ErrEmptyTree is carried by the panic raised when Value is called on an
// empty tree: there is no element to return. Check IsEmpty first.
var ErrEmptyTree = errors.New("rbtree: no such element in empty tree")

// ErrLeafChildren is carried by the panic raised when Left or Right is
// called on an empty tree. Unlike ErrEmptyTree this signals a programming
// error: an empty tree has no children to navigate into.
var ErrLeafChildren = errors.New("rbtree: empty tree has no children")

// Tree is an immutable, persistent, ordered collection of values of type T.
// The zero Tree is not usable; construct trees with Empty or Of, supplying
// a comparator. Tree values are cheap to copy and safe to share.
type Tree[T any] struct {
	cmp  Comparator[T]
	root *node[T]
}

// Empty returns an empty tree ordered by cmp.
func Empty[T any](cmp Comparator[T]) Tree[T] {
	return Tree[T]{cmp: cmp}
}

// Of returns a tree ordered by cmp, containing the given values.
func Of[T any](cmp Comparator[T], values ...T) Tree[T] {
	tree := Tree[T]{cmp: cmp}
	for _, v := range values {
		tree = tree.Insert(v)
	}
	return tree
}

// IsEmpty reports whether the tree contains no values.
func (t Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Size counts the values in the tree. It runs in O(n); the count is not
// cached in nodes.
func (t Tree[T]) Size() int {
	return size(t.root)
}

// Contains reports whether a value ordering equal to value is present.
func (t Tree[T]) Contains(value T) bool {
	return contains(t.cmp, t.root, value)
}

// Find returns the stored element which orders equal to value, with
// found=false if there is none. This matters for element types which carry
// data that does not take part in the ordering.
func (t Tree[T]) Find(value T) (T, bool) {
	n := t.root
	for n != nil {
		c := t.cmp(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	var none T
	return none, false
}

// Insert returns a tree which additionally contains value. If an element
// ordering equal to value is already present, the receiver is returned
// unchanged (same root, no allocation).
func (t Tree[T]) Insert(value T) Tree[T] {
	newRoot := insert(t.cmp, t.root, value)
	if newRoot == t.root {
		tracer().Debugf("insert of contained value is a no-op")
		return t
	}
	return Tree[T]{cmp: t.cmp, root: newRoot.paint(Black)}
}

// Delete returns a tree without value. Deleting a value which is not
// present returns a tree equal to the receiver.
func (t Tree[T]) Delete(value T) Tree[T] {
	newRoot, _ := del(t.cmp, t.root, value)
	return Tree[T]{cmp: t.cmp, root: newRoot.paint(Black)}
}

// Min returns the smallest value of the tree, with ok=false for an empty tree.
func (t Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var none T
		return none, false
	}
	return minimum(t.root), true
}

// Max returns the largest value of the tree, with ok=false for an empty tree.
func (t Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var none T
		return none, false
	}
	return maximum(t.root), true
}

// Union returns a tree containing every value of the receiver and of other.
// Both trees have to be ordered compatibly; the receiver's comparator is
// used for the result. Where both trees contain an equal-ordering element,
// the element of other is kept.
func (t Tree[T]) Union(other Tree[T]) Tree[T] {
	return Tree[T]{cmp: t.cmp, root: union(t.cmp, t.root, other.root)}
}

// Intersection returns a tree containing the values present in both the
// receiver and other. Both trees have to be ordered compatibly; the
// receiver's comparator is used throughout.
func (t Tree[T]) Intersection(other Tree[T]) Tree[T] {
	return Tree[T]{cmp: t.cmp, root: intersection(t.cmp, t.root, other.root)}
}

// Difference returns a tree containing the values of the receiver which are
// not present in other. Both trees have to be ordered compatibly.
func (t Tree[T]) Difference(other Tree[T]) Tree[T] {
	return Tree[T]{cmp: t.cmp, root: difference(t.cmp, t.root, other.root)}
}

// Color returns the color of the root node. An empty tree is Black.
func (t Tree[T]) Color() Color {
	if t.root == nil {
		return Black
	}
	return t.root.color
}

// Value returns the value stored in the root node. Calling Value on an
// empty tree panics with ErrEmptyTree.
func (t Tree[T]) Value() T {
	if t.root == nil {
		panic(ErrEmptyTree)
	}
	return t.root.value
}

// Left returns the left subtree of the root node. Calling Left on an empty
// tree panics with ErrLeafChildren.
func (t Tree[T]) Left() Tree[T] {
	if t.root == nil {
		panic(ErrLeafChildren)
	}
	return Tree[T]{cmp: t.cmp, root: t.root.left}
}

// Right returns the right subtree of the root node. Calling Right on an
// empty tree panics with ErrLeafChildren.
func (t Tree[T]) Right() Tree[T] {
	if t.root == nil {
		panic(ErrLeafChildren)
	}
	return Tree[T]{cmp: t.cmp, root: t.root.right}
}

// Each calls f for every value in comparator order until f returns false.
func (t Tree[T]) Each(f func(T) bool) {
	each(t.root, f)
}

func each[T any](n *node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}
	return each(n.left, f) && f(n.value) && each(n.right, f)
}

// Equals reports whether both trees contain the same sequence of values
// under the receiver's comparator. Internal shape and coloring do not
// matter: trees with different construction histories compare equal as
// long as they hold the same elements.
func (t Tree[T]) Equals(other Tree[T]) bool {
	a, b := t.Iterator(), other.Iterator()
	for {
		va, oka := a.Next()
		vb, okb := b.Next()
		if oka != okb {
			return false
		}
		if !oka {
			return true
		}
		if t.cmp(va, vb) != 0 {
			return false
		}
	}
}

// String renders the tree with color and value per node, primarily for
// testing and debugging, e.g. "(B:4 (B:2 R:1) B:5)". The empty tree renders
// as "()". This is a diagnostic, not a stable format.
func (t Tree[T]) String() string {
	if t.root == nil {
		return "()"
	}
	if t.root.left == nil && t.root.right == nil {
		return "(" + t.root.lisp() + ")"
	}
	return t.root.lisp()
}
