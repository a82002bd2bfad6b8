/*
Package hamt implements a persistent hash array mapped trie (HAMT), the
backing store for hash-based maps and sets.

A HAMT is a wide, shallow trie keyed by successive bit-groups of a hash
code: each node consumes 5 bits of the 32-bit hash and indexes into up to 32
sub-slots, present slots being tracked in a bitmap. Updates copy only the
nodes on the path from the root to the touched slot and share everything
else with the previous version, the same structural-sharing pattern used by
the red-black tree of package rbtree — just without any rebalancing, since
the hash bits spread entries evenly.

Hashing and key equality are supplied by the caller at construction time
and carried with the map value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package hamt

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vavr.hamt'.
func tracer() tracing.Trace {
	return tracing.Select("vavr.hamt")
}
