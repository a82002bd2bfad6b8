/*
Package btree implements a persistent (immutable) in-memory version of
B-trees, mapping keys to values. Compared to the binary search tree of
package rbtree it trades pointer-chasing for wide nodes with better cache
behaviour.

A good introduction to B-trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/B-Trees/.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vavr.btree'.
func tracer() tracing.Trace {
	return tracing.Select("vavr.btree")
}
