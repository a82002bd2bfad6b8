/*
Package treemap implements a persistent sorted map on top of the red-black
tree of package rbtree. Entries are ordered by a comparator over the keys,
lifted to key/value pairs; values do not participate in the ordering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package treemap

import (
	"fmt"
	"strings"

	"github.com/yutui1281461/vavr/persistent/rbtree"
)

// Entry is a key/value pair stored in a Map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an immutable, persistent sorted map. The zero Map is not usable;
// construct maps with Empty.
type Map[K, V any] struct {
	tree rbtree.Tree[Entry[K, V]]
}

// Empty returns an empty map with keys ordered by cmp.
func Empty[K, V any](cmp rbtree.Comparator[K]) Map[K, V] {
	entryCmp := func(a, b Entry[K, V]) int {
		return cmp(a.Key, b.Key)
	}
	return Map[K, V]{tree: rbtree.Empty(entryCmp)}
}

// Set returns a map in which key is associated with value, replacing any
// previous association.
func (m Map[K, V]) Set(key K, value V) Map[K, V] {
	// the backing tree treats equal-ordering entries as the same element,
	// so a stale association has to go first
	tree := m.tree.Delete(Entry[K, V]{Key: key})
	return Map[K, V]{tree: tree.Insert(Entry[K, V]{Key: key, Value: value})}
}

// Get returns the value associated with key, with found=false if the key
// has no association.
func (m Map[K, V]) Get(key K) (V, bool) {
	entry, found := m.tree.Find(Entry[K, V]{Key: key})
	return entry.Value, found
}

// Delete returns a map without an association for key.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	return Map[K, V]{tree: m.tree.Delete(Entry[K, V]{Key: key})}
}

// Has reports whether key has an association.
func (m Map[K, V]) Has(key K) bool {
	return m.tree.Contains(Entry[K, V]{Key: key})
}

// IsEmpty reports whether the map holds no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Size counts the entries of the map, in O(n).
func (m Map[K, V]) Size() int {
	return m.tree.Size()
}

// Keys returns the keys of the map in ascending order.
func (m Map[K, V]) Keys() []K {
	var keys []K
	m.tree.Each(func(e Entry[K, V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Each calls f for every entry in ascending key order until f returns false.
func (m Map[K, V]) Each(f func(K, V) bool) {
	m.tree.Each(func(e Entry[K, V]) bool {
		return f(e.Key, e.Value)
	})
}

// String renders the map for diagnostics, e.g. "{1→a, 2→b}".
func (m Map[K, V]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	first := true
	m.Each(func(k K, v V) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v→%v", k, v)
		return true
	})
	b.WriteByte('}')
	return b.String()
}
