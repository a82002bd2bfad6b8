package vector

import (
	"fmt"
	"strings"

	"github.com/yutui1281461/vavr/maybe"
)

// Vector is an immutable, persistent sequence of values of type T with
// efficient random access and amortized O(1) append at the back. Vector
// values are cheap to copy and safe to share.
type Vector[T any] struct {
	props
	length uint32
	tail   []T
	root   *vnode[T]
}

// Immutable creates an empty vector, configured by options.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the underlying
// tree for a vector. The degree of the tree will be 2^exp. Accepted
// exponents are [1…5]; default is 3, i.e. a degree of 8.
//
// Use it like this:
//
//     vec := vector.Immutable[int](DegreeExponent(5))
//
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 2
		} else if n > 5 {
			n = 5
		}
		p = props{bits: uint32(n)}
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
		return p
	}
	return Option{config: conf}
}

// props carries the geometry of a vector's trie. shift is the bit-position
// of the root level; leaves sit at shift 0.
type props struct {
	bits   uint32
	degree uint32
	mask   uint32
	shift  uint32
}

func (p props) init() props {
	if p.bits == 0 {
		p.bits = 3
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
	}
	return p
}

func (p props) withShift(s uint32) props {
	p.shift = s
	return p
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of the vector.
func (v Vector[T]) Len() int {
	return int(v.length)
}

// IsEmpty reports whether the vector has no elements.
func (v Vector[T]) IsEmpty() bool {
	return v.length == 0
}

// Last returns the last element of the vector, or Nothing for an empty vector.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if len(v.tail) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Get returns the element at index i. Get panics for an index out of bounds.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		return v.tail[uint32(i)&v.mask]
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(uint32(i)>>level)&v.mask]
	}
	return node.leafs[uint32(i)&v.mask]
}

// Set returns a vector with the element at index i replaced by value. The
// receiver is left unchanged. Set panics for an index out of bounds.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && uint32(i) < v.length, "vector index out of bounds: %d with length %d", i, v.length)
	v.props = v.props.init()
	if uint32(i) >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[uint32(i)&v.mask] = value
		return Vector[T]{length: v.length, props: v.props, root: v.root, tail: newTail}
	}
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (uint32(i) >> level) & v.mask
		child := node.children[subidx].clone()
		node.children[subidx] = child
		node = child
	}
	node.leafs[uint32(i)&v.mask] = value
	return Vector[T]{length: v.length, props: v.props, root: newRoot, tail: v.tail}
}

// Push returns a vector with value appended at the back.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	if !v.tailFull() { // just append value to tail
		tracer().Debugf("tail not full, appending %v to %v", value, v.tail)
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Vector[T]{length: v.length + 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into tree
	newTail := []T{value}
	assertThat(v.length >= v.degree, "inconsistency: vector.length expected to be >= degree")
	if v.length == v.degree { // if old size = degree ⇒ tail becomes new root
		assertThat(v.root == nil, "inconsistency: vector.root expected to be nil")
		leaf := newLeaf(v.tail)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(0), root: leaf, tail: newTail}
	}
	// check for root is full ⇒ increment shift
	if (v.length >> v.bits) > (1 << v.shift) {
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.props, v.tail)
		tracer().Debugf("vector trie full, new root at shift %d", v.shift+v.bits)
		return Vector[T]{length: v.length + 1, props: v.props.withShift(v.shift + v.bits), root: newRoot, tail: newTail}
	}
	// still space in root
	newRoot := v.pushLeaf(v.length - 1)
	return Vector[T]{length: v.length + 1, props: v.props, root: newRoot, tail: newTail}
}

// pushLeaf hangs the (full) tail into the trie as a leaf, copying the nodes
// on the way down. i is an index within the tail being pushed.
func (v Vector[T]) pushLeaf(i uint32) *vnode[T] {
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > v.bits; level -= v.bits {
		subidx := (i >> level) & v.mask
		child := node.children[subidx]
		if child == nil {
			node.children[subidx] = newPath(level-v.bits, v.props, v.tail)
			return newRoot
		}
		child = child.clone()
		node.children[subidx] = child
		node = child
	}
	node.children[(i>>v.bits)&v.mask] = newLeaf(v.tail)
	return newRoot
}

// Pop returns a vector with the last element removed. The receiver is left
// unchanged. Pop panics for an empty vector.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.length > 0, "attempt to remove item from empty vector")
	v.props = v.props.init()
	if v.length == 1 {
		return Vector[T]{props: v.props.withShift(0)}
	}
	if ((v.length - 1) & v.mask) > 0 { // tail keeps at least one element
		newTail := cloneTail(v.tail, len(v.tail)-1)
		return Vector[T]{length: v.length - 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail runs empty ⇒ pull the trie's last leaf out as the new tail
	newTrieSize := v.length - v.degree - 1
	if newTrieSize == 0 { // root vanishes into tail
		return Vector[T]{length: v.degree, props: v.props.withShift(0), root: nil, tail: v.root.leafs}
	}
	if newTrieSize == 1<<v.shift { // can lower the height
		return v.lowerTrie()
	}
	return v.popTrie()
}

// lowerTrie drops the root: after the pop everything left fits into the
// root's first subtree. The trie's last leaf is the leftmost leaf of the
// second subtree.
func (v Vector[T]) lowerTrie() Vector[T] {
	lowerShift := v.shift - v.bits
	newRoot := v.root.children[0]
	node := v.root.children[1]
	for level := lowerShift; level > 0; level -= v.bits {
		node = node.children[0]
	}
	return Vector[T]{length: v.length - 1, props: v.props.withShift(lowerShift), root: newRoot, tail: node.leafs}
}

// popTrie removes the trie's last leaf, copying the path down to it and
// nil-ing out the subtree which held nothing else.
func (v Vector[T]) popTrie() Vector[T] {
	newTrieSize := v.length - v.degree - 1
	forkPoint := newTrieSize ^ (newTrieSize - 1) // where does the node-path fork?
	var forked bool
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (newTrieSize >> level) & v.mask
		child := node.children[subidx]
		switch {
		case forked:
			node = child
		case (forkPoint >> level) != 0:
			forked = true
			node.children[subidx] = nil
			node = child
		default:
			child = child.clone()
			node.children[subidx] = child
			node = child
		}
	}
	return Vector[T]{length: v.length - 1, props: v.props, root: newRoot, tail: node.leafs}
}

// Each calls f for every element in index order until f returns false.
func (v Vector[T]) Each(f func(T) bool) {
	if !eachLeaf(v.root, func(leaf []T) bool {
		for _, value := range leaf {
			if !f(value) {
				return false
			}
		}
		return true
	}) {
		return
	}
	for _, value := range v.tail {
		if !f(value) {
			return
		}
	}
}

// Values returns the elements of the vector as a slice.
func (v Vector[T]) Values() []T {
	values := make([]T, 0, v.length)
	v.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// String renders the vector for diagnostics, e.g. "<1, 2, 3>".
func (v Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('<')
	first := true
	v.Each(func(value T) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v", value)
		return true
	})
	b.WriteByte('>')
	return b.String()
}

func (v Vector[T]) tailOffset() uint32 {
	if v.length == 0 {
		return 0
	}
	return (v.length - 1) &^ v.mask
}

func (v Vector[T]) tailFull() bool {
	return len(v.tail) >= int(v.degree)
}
