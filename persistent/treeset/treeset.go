/*
Package treeset implements a persistent sorted set on top of the red-black
tree of package rbtree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package treeset

import (
	"fmt"
	"strings"

	"github.com/yutui1281461/vavr/persistent/rbtree"
)

// Set is an immutable, persistent sorted set of values of type T, ordered
// by the comparator supplied at construction time. The zero Set is not
// usable; construct sets with Empty or Of.
type Set[T any] struct {
	tree rbtree.Tree[T]
}

// Empty returns an empty set ordered by cmp.
func Empty[T any](cmp rbtree.Comparator[T]) Set[T] {
	return Set[T]{tree: rbtree.Empty(cmp)}
}

// Of returns a set ordered by cmp, containing the given values.
func Of[T any](cmp rbtree.Comparator[T], values ...T) Set[T] {
	return Set[T]{tree: rbtree.Of(cmp, values...)}
}

// Add returns a set which additionally contains value. Adding a contained
// value returns the receiver unchanged.
func (s Set[T]) Add(value T) Set[T] {
	return Set[T]{tree: s.tree.Insert(value)}
}

// Remove returns a set without value. Removing an absent value returns a
// set equal to the receiver.
func (s Set[T]) Remove(value T) Set[T] {
	return Set[T]{tree: s.tree.Delete(value)}
}

// Contains reports whether value is in the set.
func (s Set[T]) Contains(value T) bool {
	return s.tree.Contains(value)
}

// IsEmpty reports whether the set holds no values.
func (s Set[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Size counts the values in the set, in O(n).
func (s Set[T]) Size() int {
	return s.tree.Size()
}

// Union returns the set of values contained in s or in other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	return Set[T]{tree: s.tree.Union(other.tree)}
}

// Intersection returns the set of values contained in s and in other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	return Set[T]{tree: s.tree.Intersection(other.tree)}
}

// Difference returns the set of values contained in s but not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	return Set[T]{tree: s.tree.Difference(other.tree)}
}

// Min returns the smallest value, with ok=false for an empty set.
func (s Set[T]) Min() (T, bool) {
	return s.tree.Min()
}

// Max returns the largest value, with ok=false for an empty set.
func (s Set[T]) Max() (T, bool) {
	return s.tree.Max()
}

// Values returns the values of the set in ascending order.
func (s Set[T]) Values() []T {
	return s.tree.Iterator().Values()
}

// Each calls f for every value in ascending order until f returns false.
func (s Set[T]) Each(f func(T) bool) {
	s.tree.Each(f)
}

// Equals reports whether both sets contain the same values, independent of
// construction history.
func (s Set[T]) Equals(other Set[T]) bool {
	return s.tree.Equals(other.tree)
}

// String renders the set for diagnostics, e.g. "{1, 2, 3}".
func (s Set[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	s.tree.Each(func(v T) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
		return true
	})
	b.WriteByte('}')
	return b.String()
}
