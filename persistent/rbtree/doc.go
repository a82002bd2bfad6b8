/*
Package rbtree implements a persistent (immutable) red-black tree.

The tree is the backing store for the ordered set and map types of this
module. Every "mutating" operation (Insert, Delete, Union, …) leaves the
receiver untouched and returns a new tree which shares all unchanged
subtrees with the original; only the path from the root to the point of
change is copied. Old versions of a tree stay valid and may be used and
traversed concurrently without synchronization.

The ordering of elements is given by a Comparator which is supplied at
construction time and carried with the tree value. Two trees over the same
element type may therefore use different orderings; the set operations
Union, Intersection and Difference assume both operands are ordered
compatibly and use the receiver's comparator throughout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vavr.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("vavr.rbtree")
}
