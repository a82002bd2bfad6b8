package btree

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding clones of nodes.

- We use a programming-style reminiscent of functional programming (see remarks on
  re-balancing) where it makes things easier to understand.

- A new modified incarnation of a tree always is reflected by a new tree.root.

*/

// Comparator is the ordering for keys of type K: negative for a < b, zero
// for a == b, positive for a > b.
type Comparator[K any] func(a, b K) int

const defaultLowWaterMark uint = 3

// high water mark is the maximum number of items a node may hold
var defaultHighWaterMark uint = defaultLowWaterMark*2 + 1

// Tree is an in-memory B-tree, mapping keys of type K to values of type V.
// The zero Tree is not usable; construct trees with Immutable, supplying a
// comparator for the keys. Tree values are cheap to copy and safe to share.
type Tree[K, V any] struct {
	props
	cmp  Comparator[K]
	root *xnode[K, V]
}

// props carries the geometry of a tree: water marks for splitting and
// merging of nodes, and the current depth.
type props struct {
	lowWaterMark  uint
	highWaterMark uint
	depth         uint
}

// Immutable constructs a B-tree with options, if you need any.
// Use it like this:
//
//     tree := btree.Immutable[int, string](cmp, Degree(16))
//     tree = tree.With(42, "Galaxy")
//     value, found := tree.Find(42)   // returns "Galaxy"
//
func Immutable[K, V any](cmp Comparator[K], opts ...Option) Tree[K, V] {
	tree := Tree[K, V]{
		cmp: cmp,
		props: props{
			lowWaterMark:  defaultLowWaterMark,
			highWaterMark: defaultHighWaterMark,
		},
	}
	for _, option := range opts {
		tree.props = option.config(tree.props)
	}
	return tree
}

// Option is a type to help initializing B-trees at creation time.
type Option struct {
	config func(props) props
}

// Degree is an option to set the minimum number of children an inner node
// of the tree owns. The lower bound for the degree is 3.
//
// Use it like this:
//
//     tree := btree.Immutable[int, string](cmp, Degree(16))
//
func Degree(n int) Option {
	conf := func(p props) props {
		low := max(2, n-1)
		p.lowWaterMark = uint(low)
		p.highWaterMark = p.lowWaterMark*2 + 1
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Find locates a key in a tree, if present, and returns the value associated
// with the key. If key is not found, the zero value for type V will be
// returned, together with found=false.
func (tree Tree[K, V]) Find(key K) (V, bool) {
	var found bool
	var path slotPath[K, V] = make([]slot[K, V], tree.depth)
	if found, path = tree.findKeyAndPath(key, path); found {
		return path.last().item().value, true
	}
	var none V
	return none, false
}

// IsEmpty reports whether the tree holds no entries.
func (tree Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Depth returns the current height of the tree.
func (tree Tree[K, V]) Depth() int {
	return int(tree.depth)
}

// With returns a copy of a tree with a new key inserted, which is associated
// with `value`. If an entry for key is already present in tree, the
// associated value will be replaced (in a new incarnation of the tree,
// nevertheless).
func (tree Tree[K, V]) With(key K, value V) Tree[K, V] {
	var path slotPath[K, V] = make([]slot[K, V], tree.depth)
	var found bool
	if found, path = tree.findKeyAndPath(key, path); found {
		return tree.replacing(value, path) // copy with replaced value
	}
	tracer().Debugf("insert: slot path = %s", path)
	item := xitem[K, V]{key, value}
	if tree.root == nil { // virgin tree => insert first node and return
		leaf := xnode[K, V]{}.withInsertedItem(item, 0)
		return tree.shallowCloneWithRoot(&leaf, 1)
	}
	leafSlot := path.last()
	assertThat(leafSlot.node.isLeaf(), "attempt to insert item at non-leaf")
	cow := leafSlot.node.withInsertedItem(item, leafSlot.index) // copy-on-write
	tracer().Debugf("insert: created copy of (leaf + key@%d) = %s", leafSlot.index, &cow)
	newRoot := path.dropLast().foldR(splitAndClone[K, V](tree.highWaterMark),
		slot[K, V]{node: &cow, index: leafSlot.index},
	)
	tracer().Debugf("insert: new root = %s", newRoot)
	depth := tree.depth
	if newRoot.node.overfull(tree.highWaterMark) {
		empty := slot[K, V]{node: &xnode[K, V]{}, index: 0}
		newRoot = empty.splitChild(newRoot)
		depth++
	}
	return tree.shallowCloneWithRoot(newRoot.node, depth)
}

// WithDeleted returns a copy of a tree with key deleted, if present. If key
// is not found, tree is returned unchanged.
func (tree Tree[K, V]) WithDeleted(key K) Tree[K, V] {
	var path slotPath[K, V] = make([]slot[K, V], tree.depth)
	var found bool
	if found, path = tree.findKeyAndPath(key, path); !found {
		return tree // no need for modification
	}
	tracer().Debugf("deletion: slot path = %s", path)
	del := path.last()
	var leafSlot slot[K, V]
	if del.node.isLeaf() {
		cow := del.node.withDeletedItem(del.index) // copy-on-write
		tracer().Debugf("created copy of leaf w/out deleted item: %v", cow.items)
		leafSlot = slot[K, V]{node: &cow, index: del.index}
	} else { // for inner node:
		// swap item with rightmost item of left subtree
		cow := del.node.clone()       // cow is clone of inner node
		path[len(path)-1].node = &cow // remember clone in path
		leafItem, leafPath := stealPred(path)
		cow.items[del.index] = leafItem           // insert stolen item
		l := leafPath.last()                      //
		cowLeaf := l.node.withDeletedItem(l.index) // remove stolen item from leaf
		path = leafPath                           // continue with path from root to leaf
		leafSlot = slot[K, V]{node: &cowLeaf, index: l.index}
	}
	// balance from leaf-node upwards, starting at the leaf where we deleted an item
	tracer().Debugf("after delete: path = %v", path)
	newRoot := path.dropLast().foldR(balance[K, V](tree.lowWaterMark),
		leafSlot,
	)
	tracer().Debugf("deletion: new root = %s", newRoot)
	newTree := tree.shallowCloneWithRoot(newRoot.node, tree.depth)
	switch { // catch border cases where root is empty after deletion
	case newRoot.len() == 0 && !newRoot.node.isLeaf():
		newTree.root = newRoot.node.children[0]
		newTree.depth--
	case newRoot.len() == 0 && newRoot.node.isLeaf():
		newTree.root = nil
		newTree.depth = 0
	}
	return newTree
}

// Each calls f for every entry in ascending key order until f returns false.
func (tree Tree[K, V]) Each(f func(K, V) bool) {
	eachItem(tree.root, f)
}

func eachItem[K, V any](node *xnode[K, V], f func(K, V) bool) bool {
	if node == nil {
		return true
	}
	for i, item := range node.items {
		if !node.isLeaf() && !eachItem(node.children[i], f) {
			return false
		}
		if !f(item.key, item.value) {
			return false
		}
	}
	if !node.isLeaf() {
		return eachItem(node.children[len(node.children)-1], f)
	}
	return true
}

func (tree Tree[K, V]) shallowCloneWithRoot(root *xnode[K, V], depth uint) Tree[K, V] {
	newTree := tree
	newTree.root = root
	newTree.depth = depth
	return newTree
}
