package hamt

import (
	"hash/fnv"
	"math/bits"
)

// Hasher computes the 32-bit hash code a key is placed by.
type Hasher[K any] func(K) uint32

// Equality decides whether two keys are the same key. Keys with equal hash
// codes may still be different keys.
type Equality[K any] func(a, b K) bool

const (
	nbits  = 5
	degree = 1 << nbits
	slotMask = degree - 1
	// beyond this shift the hash bits are exhausted; nodes degenerate into
	// linearly scanned collision buckets
	maxShift = 30
)

// Map is an immutable, persistent hash map. The zero Map is not usable;
// construct maps with Empty.
type Map[K, V any] struct {
	hash   Hasher[K]
	eq     Equality[K]
	root   *mnode[K, V]
	length int
}

// mnode is a bitmap-indexed trie node. Collision buckets (at exhausted
// hash depth) leave the bitmap unused and scan entries linearly.
type mnode[K, V any] struct {
	bitmap  uint32
	entries []entry[K, V]
}

// entry is one slot of a node: either a key/value leaf or a link to a
// subtrie (sub non-nil).
type entry[K, V any] struct {
	sub *mnode[K, V]
	key K
	val V
}

// Empty returns an empty map using the given hasher and key equality.
func Empty[K, V any](hash Hasher[K], eq Equality[K]) Map[K, V] {
	return Map[K, V]{hash: hash, eq: eq}
}

// Len returns the number of entries, in O(1).
func (m Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the map holds no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.length == 0
}

// Get returns the value associated with key, with found=false if the key
// has no association.
func (m Map[K, V]) Get(key K) (V, bool) {
	var none V
	if m.root == nil {
		return none, false
	}
	h := m.hash(key)
	n := m.root
	for shift := 0; ; shift += nbits {
		if shift > maxShift {
			for _, e := range n.entries {
				if m.eq(e.key, key) {
					return e.val, true
				}
			}
			return none, false
		}
		bit := uint32(1) << ((h >> shift) & slotMask)
		if n.bitmap&bit == 0 {
			return none, false
		}
		e := n.entries[bits.OnesCount32(n.bitmap&(bit-1))]
		if e.sub == nil {
			if m.eq(e.key, key) {
				return e.val, true
			}
			return none, false
		}
		n = e.sub
	}
}

// Has reports whether key has an association.
func (m Map[K, V]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

// With returns a map in which key is associated with value, replacing any
// previous association. The receiver is left unchanged.
func (m Map[K, V]) With(key K, value V) Map[K, V] {
	h := m.hash(key)
	var root *mnode[K, V]
	var added bool
	if m.root == nil {
		root = &mnode[K, V]{
			bitmap:  uint32(1) << (h & slotMask),
			entries: []entry[K, V]{{key: key, val: value}},
		}
		added = true
	} else {
		root, added = m.insert(m.root, 0, h, key, value)
	}
	length := m.length
	if added {
		length++
	}
	return Map[K, V]{hash: m.hash, eq: m.eq, root: root, length: length}
}

func (m Map[K, V]) insert(n *mnode[K, V], shift int, h uint32, key K, value V) (*mnode[K, V], bool) {
	if shift > maxShift {
		for i, e := range n.entries {
			if m.eq(e.key, key) {
				cow := cloneEntries(n.entries, 0)
				cow[i].val = value
				return &mnode[K, V]{entries: cow}, false
			}
		}
		cow := cloneEntries(n.entries, 1)
		cow = append(cow, entry[K, V]{key: key, val: value})
		return &mnode[K, V]{entries: cow}, true
	}
	bit := uint32(1) << ((h >> shift) & slotMask)
	pos := bits.OnesCount32(n.bitmap & (bit - 1))
	if n.bitmap&bit == 0 {
		cow := make([]entry[K, V], 0, len(n.entries)+1)
		cow = append(cow, n.entries[:pos]...)
		cow = append(cow, entry[K, V]{key: key, val: value})
		cow = append(cow, n.entries[pos:]...)
		return &mnode[K, V]{bitmap: n.bitmap | bit, entries: cow}, true
	}
	e := n.entries[pos]
	if e.sub != nil {
		sub, added := m.insert(e.sub, shift+nbits, h, key, value)
		cow := cloneEntries(n.entries, 0)
		cow[pos] = entry[K, V]{sub: sub}
		return &mnode[K, V]{bitmap: n.bitmap, entries: cow}, added
	}
	if m.eq(e.key, key) {
		cow := cloneEntries(n.entries, 0)
		cow[pos].val = value
		return &mnode[K, V]{bitmap: n.bitmap, entries: cow}, false
	}
	// two different keys claim the same slot: push both one level down
	tracer().Debugf("hash slot collision at shift %d, splitting", shift)
	sub := m.pair(shift+nbits, m.hash(e.key), e.key, e.val, h, key, value)
	cow := cloneEntries(n.entries, 0)
	cow[pos] = entry[K, V]{sub: sub}
	return &mnode[K, V]{bitmap: n.bitmap, entries: cow}, true
}

// pair builds the subtrie holding exactly two keys, descending further for
// as long as their hash bits keep colliding.
func (m Map[K, V]) pair(shift int, h1 uint32, k1 K, v1 V, h2 uint32, k2 K, v2 V) *mnode[K, V] {
	if shift > maxShift {
		return &mnode[K, V]{entries: []entry[K, V]{
			{key: k1, val: v1},
			{key: k2, val: v2},
		}}
	}
	i1 := (h1 >> shift) & slotMask
	i2 := (h2 >> shift) & slotMask
	if i1 == i2 {
		sub := m.pair(shift+nbits, h1, k1, v1, h2, k2, v2)
		return &mnode[K, V]{
			bitmap:  uint32(1) << i1,
			entries: []entry[K, V]{{sub: sub}},
		}
	}
	e1 := entry[K, V]{key: k1, val: v1}
	e2 := entry[K, V]{key: k2, val: v2}
	if i1 > i2 {
		e1, e2 = e2, e1
	}
	return &mnode[K, V]{
		bitmap:  uint32(1)<<i1 | uint32(1)<<i2,
		entries: []entry[K, V]{e1, e2},
	}
}

// Without returns a map without an association for key. Removing an absent
// key returns the receiver unchanged.
func (m Map[K, V]) Without(key K) Map[K, V] {
	if m.root == nil {
		return m
	}
	root, removed := m.remove(m.root, 0, m.hash(key), key)
	if !removed {
		return m
	}
	return Map[K, V]{hash: m.hash, eq: m.eq, root: root, length: m.length - 1}
}

func (m Map[K, V]) remove(n *mnode[K, V], shift int, h uint32, key K) (*mnode[K, V], bool) {
	if shift > maxShift {
		for i, e := range n.entries {
			if m.eq(e.key, key) {
				return withoutEntry(n, 0, i), true
			}
		}
		return n, false
	}
	bit := uint32(1) << ((h >> shift) & slotMask)
	if n.bitmap&bit == 0 {
		return n, false
	}
	pos := bits.OnesCount32(n.bitmap & (bit - 1))
	e := n.entries[pos]
	if e.sub != nil {
		sub, removed := m.remove(e.sub, shift+nbits, h, key)
		if !removed {
			return n, false
		}
		if sub == nil {
			return withoutEntry(n, bit, pos), true
		}
		cow := cloneEntries(n.entries, 0)
		cow[pos] = entry[K, V]{sub: sub}
		return &mnode[K, V]{bitmap: n.bitmap, entries: cow}, true
	}
	if !m.eq(e.key, key) {
		return n, false
	}
	return withoutEntry(n, bit, pos), true
}

// withoutEntry drops the slot at pos, clearing bit in the bitmap. A node
// losing its last slot vanishes (nil).
func withoutEntry[K, V any](n *mnode[K, V], bit uint32, pos int) *mnode[K, V] {
	if len(n.entries) == 1 {
		return nil
	}
	cow := make([]entry[K, V], 0, len(n.entries)-1)
	cow = append(cow, n.entries[:pos]...)
	cow = append(cow, n.entries[pos+1:]...)
	return &mnode[K, V]{bitmap: n.bitmap &^ bit, entries: cow}
}

// Each calls f for every entry until f returns false. The order of entries
// follows the hash codes and is not meaningful to callers.
func (m Map[K, V]) Each(f func(K, V) bool) {
	eachEntry(m.root, f)
}

func eachEntry[K, V any](n *mnode[K, V], f func(K, V) bool) bool {
	if n == nil {
		return true
	}
	for _, e := range n.entries {
		if e.sub != nil {
			if !eachEntry(e.sub, f) {
				return false
			}
		} else if !f(e.key, e.val) {
			return false
		}
	}
	return true
}

func cloneEntries[K, V any](entries []entry[K, V], extraCap int) []entry[K, V] {
	cow := make([]entry[K, V], len(entries), len(entries)+extraCap)
	copy(cow, entries)
	return cow
}

// --- Hashers ---------------------------------------------------------------

// HashString is a Hasher for string keys (FNV-1a).
func HashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// HashInt is a Hasher for int keys.
func HashInt(n int) uint32 {
	h := uint32(n) ^ uint32(uint64(n)>>32)
	// spread the low bits, integer keys are often sequential
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	return h
}
