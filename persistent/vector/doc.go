/*
Package vector implements an immutable persistent vector, designed for
use-cases similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each
“modification” of the vector (replacement, push or pop) creates a copy,
leaving the original unmodified. Under the hood, copy-on-write retains most
of the memory held by the original, and creates a new incarnation of parts
of the structure only. Thus, most of the structure/memory is shared between
original and copy, transparently to clients.

Vectors are backed by a bit-mapped trie of small fixed-degree nodes, with
the trailing elements held in a flat tail buffer. Indexing walks the trie by
successive bit-groups of the index; appending and popping mostly touch the
tail only.

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vavr.vector'.
func tracer() tracing.Trace {
	return tracing.Select("vavr.vector")
}
