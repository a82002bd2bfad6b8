/*
Package hashset implements a persistent unordered set on top of the hash
array mapped trie of package hamt. Element hashing and equality are supplied
by the caller; elements need not be ordered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package hashset

import (
	"fmt"
	"strings"

	"github.com/yutui1281461/vavr/persistent/hamt"
)

// Set is an immutable, persistent unordered set. The zero Set is not usable;
// construct sets with Empty or Of.
type Set[T any] struct {
	m hamt.Map[T, struct{}]
}

// Empty returns an empty set using the given hasher and equality.
func Empty[T any](hash hamt.Hasher[T], eq hamt.Equality[T]) Set[T] {
	return Set[T]{m: hamt.Empty[T, struct{}](hash, eq)}
}

// Of returns a set containing the given values.
func Of[T any](hash hamt.Hasher[T], eq hamt.Equality[T], values ...T) Set[T] {
	s := Empty(hash, eq)
	for _, v := range values {
		s = s.Add(v)
	}
	return s
}

// Add returns a set which additionally contains value.
func (s Set[T]) Add(value T) Set[T] {
	return Set[T]{m: s.m.With(value, struct{}{})}
}

// Remove returns a set without value.
func (s Set[T]) Remove(value T) Set[T] {
	return Set[T]{m: s.m.Without(value)}
}

// Contains reports whether value is an element of the set.
func (s Set[T]) Contains(value T) bool {
	return s.m.Has(value)
}

// IsEmpty reports whether the set has no elements.
func (s Set[T]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Len returns the number of elements, in O(1).
func (s Set[T]) Len() int {
	return s.m.Len()
}

// Union returns a set containing every element of the receiver and of other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	result := s
	other.Each(func(v T) bool {
		result = result.Add(v)
		return true
	})
	return result
}

// Intersection returns a set containing the elements present in both the
// receiver and other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	result := Set[T]{m: s.m}
	s.Each(func(v T) bool {
		if !other.Contains(v) {
			result = result.Remove(v)
		}
		return true
	})
	return result
}

// Difference returns a set containing the elements of the receiver which are
// not elements of other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	result := Set[T]{m: s.m}
	other.Each(func(v T) bool {
		result = result.Remove(v)
		return true
	})
	return result
}

// Each calls f for every element until f returns false. Element order
// follows the hash codes and is not meaningful to callers.
func (s Set[T]) Each(f func(T) bool) {
	s.m.Each(func(v T, _ struct{}) bool {
		return f(v)
	})
}

// Values returns the elements of the set in unspecified order.
func (s Set[T]) Values() []T {
	values := make([]T, 0, s.Len())
	s.Each(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// String renders the set for diagnostics, e.g. "{2, 1, 3}". Element order is
// unspecified.
func (s Set[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	s.Each(func(v T) bool {
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
