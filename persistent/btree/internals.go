package btree

import (
	"fmt"
	"sort"
	"strings"
)

// xitem is one key/value entry of a node.
type xitem[K, V any] struct {
	key   K
	value V
}

// xnode is a node of a B-tree: up to highWaterMark items, sorted by key, and
// for inner nodes one child link more than items. Leaf nodes have no
// children at all.
type xnode[K, V any] struct {
	items    []xitem[K, V]
	children []*xnode[K, V]
}

func (node *xnode[K, V]) isLeaf() bool {
	return len(node.children) == 0
}

func (node *xnode[K, V]) overfull(highWaterMark uint) bool {
	return len(node.items) > int(highWaterMark)
}

func (node *xnode[K, V]) underfull(lowWaterMark uint) bool {
	return len(node.items) < int(lowWaterMark)
}

func (node *xnode[K, V]) clone() xnode[K, V] {
	return node.cloneWithCapacity(len(node.items))
}

func (node *xnode[K, V]) cloneWithCapacity(cap int) xnode[K, V] {
	cap = max(cap, len(node.items))
	cow := xnode[K, V]{}
	cow.items = make([]xitem[K, V], len(node.items), cap+1)
	copy(cow.items, node.items)
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, V], len(node.children), cap+2)
		copy(cow.children, node.children)
	}
	return cow
}

// slice returns a copy of a section of a node, with items[from:to] and the
// child links embracing them.
func (node *xnode[K, V]) slice(from, to int) xnode[K, V] {
	cow := xnode[K, V]{}
	cow.items = make([]xitem[K, V], to-from)
	copy(cow.items, node.items[from:to])
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, V], to-from+1)
		copy(cow.children, node.children[from:to+1])
	}
	return cow
}

func (node *xnode[K, V]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, item := range node.items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", item.key))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Searching ---------------------------------------------------------------

func (tree Tree[K, V]) findKeyAndPath(key K, pathBuf slotPath[K, V]) (found bool, path slotPath[K, V]) {
	path = pathBuf[:0] // we track the path to the key's slot
	if tree.root == nil {
		return
	}
	var index int
	var node *xnode[K, V] = tree.root // walking nodes, start search at the top
	for !node.isLeaf() {
		tracer().Debugf("node = %v", node)
		found, index = node.findSlot(tree.cmp, key)
		path = append(path, slot[K, V]{node: node, index: index})
		if found {
			return // we have an exact match
		}
		node = node.children[index]
	}
	tracer().Debugf("node = %v", node)
	found, index = node.findSlot(tree.cmp, key)
	path = append(path, slot[K, V]{node: node, index: index})
	tracer().Debugf("slot path for key=%v -> %s", key, path)
	return
}

func (node *xnode[K, V]) findSlot(cmp Comparator[K], key K) (bool, int) {
	items, itemcnt := node.items, len(node.items)
	slotinx := sort.Search(itemcnt, func(i int) bool {
		return cmp(items[i].key, key) >= 0 // sort.Search will find the smallest i for which this is true
	})
	return slotinx < itemcnt && cmp(items[slotinx].key, key) == 0, slotinx
}

// stealPred walks from an inner deletion slot down to the rightmost leaf of
// the left subtree, extending path with every step, and returns the stolen
// item together with the extended path.
func stealPred[K, V any](path slotPath[K, V]) (xitem[K, V], slotPath[K, V]) {
	del := path.last()
	node := del.node.children[del.index]
	for !node.isLeaf() {
		path = append(path, slot[K, V]{node: node, index: len(node.items)})
		node = node.children[len(node.children)-1]
	}
	path = append(path, slot[K, V]{node: node, index: len(node.items) - 1})
	return node.items[len(node.items)-1], path
}

// --- Node modification -------------------------------------------------------

func (tree Tree[K, V]) replacing(value V, path slotPath[K, V]) Tree[K, V] {
	assertThat(len(path) > 0, "cannot replace item without path")
	tracer().Debugf("btree.With: slot path = %s", path)
	hit := path.last() // slot where the key lives
	cow := hit.node.withReplacedValue(value, hit.index)
	tracer().Debugf("created copy of node for replacement: %v", cow)
	newRoot := path.dropLast().foldR(cloneSeam[K, V], slot[K, V]{node: &cow, index: hit.index})
	tracer().Debugf("replace: top = %s", newRoot)
	return tree.shallowCloneWithRoot(newRoot.node, tree.depth)
}

func (node *xnode[K, V]) withReplacedValue(value V, at int) xnode[K, V] {
	assertThat(at < len(node.items), "given item index out of range: %d >= %d", at, len(node.items))
	cow := node.clone()
	cow.items[at].value = value
	return cow
}

func (node xnode[K, V]) withInsertedItem(item xitem[K, V], at int) xnode[K, V] {
	assertThat(at <= len(node.items), "given item index out of range: %d > %d", at, len(node.items))
	cow := node.cloneWithCapacity(len(node.items) + 1)
	var none xitem[K, V]
	cow.items = append(cow.items, none)
	copy(cow.items[at+1:], cow.items[at:])
	cow.items[at] = item
	if !node.isLeaf() { // open a slot for a child link right of the new item
		cow.children = append(cow.children, nil)
		copy(cow.children[at+2:], cow.children[at+1:])
		cow.children[at+1] = nil
	}
	return cow
}

func (node *xnode[K, V]) withDeletedItem(at int) xnode[K, V] {
	assertThat(at < len(node.items), "given item index out of range: %d >= %d", at, len(node.items))
	cow := node.clone()
	cow.items = append(cow.items[:at], cow.items[at+1:]...)
	if !cow.isLeaf() {
		cow.children = append(cow.children[:at], cow.children[at+1:]...)
	}
	return cow
}

// withCutRight cuts the rightmost item from a node, together with the child
// link right of it (nil for leafs).
func (node *xnode[K, V]) withCutRight() (xnode[K, V], xitem[K, V], *xnode[K, V]) {
	assertThat(len(node.items) > 0, "attempt to cut right item from empty node")
	cow := node.clone()
	item := cow.items[len(cow.items)-1]
	cow.items = cow.items[:len(cow.items)-1]
	var grandChild *xnode[K, V]
	if !cow.isLeaf() {
		grandChild = cow.children[len(cow.children)-1]
		cow.children = cow.children[:len(cow.children)-1]
	}
	return cow, item, grandChild
}

// withCutLeft cuts the leftmost item from a node, together with the child
// link left of it (nil for leafs).
func (node *xnode[K, V]) withCutLeft() (xnode[K, V], xitem[K, V], *xnode[K, V]) {
	assertThat(len(node.items) > 0, "attempt to cut left item from empty node")
	cow := node.clone()
	item := cow.items[0]
	cow.items = cow.items[1:]
	var grandChild *xnode[K, V]
	if !cow.isLeaf() {
		grandChild = cow.children[0]
		cow.children = cow.children[1:]
	}
	return cow, item, grandChild
}

// withPrepended puts an item (and a child link, for inner nodes) at the
// front of a node.
func (node *xnode[K, V]) withPrepended(item xitem[K, V], grandChild *xnode[K, V]) xnode[K, V] {
	cow := node.cloneWithCapacity(len(node.items) + 1)
	var none xitem[K, V]
	cow.items = append(cow.items, none)
	copy(cow.items[1:], cow.items)
	cow.items[0] = item
	if !node.isLeaf() {
		cow.children = append(cow.children, nil)
		copy(cow.children[1:], cow.children)
		cow.children[0] = grandChild
	}
	return cow
}

// withAppended puts an item (and a child link, for inner nodes) at the back
// of a node.
func (node *xnode[K, V]) withAppended(item xitem[K, V], grandChild *xnode[K, V]) xnode[K, V] {
	cow := node.cloneWithCapacity(len(node.items) + 1)
	cow.items = append(cow.items, item)
	if !node.isLeaf() {
		cow.children = append(cow.children, grandChild)
	}
	return cow
}

// --- Balancing ---------------------------------------------------------------

func splitAndClone[K, V any](highWaterMark uint) func(slot[K, V], slot[K, V]) slot[K, V] {
	return func(parent, child slot[K, V]) slot[K, V] {
		tracer().Debugf("split&propagate: parent = %s, child = %s", parent, child)
		if child.node.overfull(highWaterMark) {
			tracer().Debugf("child is overfull: %v", child)
			return parent.splitChild(child)
		}
		return cloneSeam(parent, child)
	}
}

func cloneSeam[K, V any](parent, child slot[K, V]) slot[K, V] {
	tracer().Debugf("seam: parent = %s, child = %s", parent, child)
	cowParent := parent.node.clone()
	cowParent.children[parent.index] = child.node
	return slot[K, V]{node: &cowParent, index: parent.index}
}

// splitChild splits an overfull child node around its median item, which
// moves up into the parent. Returns a modified copy of parent with 2 new
// children, where the left one substitutes the original child.
//
// It's legal to call this on a slot holding an empty xnode (in order to
// create a new tree root).
func (parent slot[K, V]) splitChild(child slot[K, V]) slot[K, V] {
	at := parent.index
	half := len(child.node.items) / 2
	medianItem := child.node.items[half]
	siblingL := child.node.slice(0, half)
	siblingR := child.node.slice(half+1, len(child.node.items))
	cow := parent.node.withInsertedItem(medianItem, at)
	if cow.isLeaf() { // parent was an empty node => becomes the new root
		cow.children = make([]*xnode[K, V], 2)
	}
	cow.children[at] = &siblingL
	cow.children[at+1] = &siblingR
	return slot[K, V]{node: &cow, index: at}
}

func balance[K, V any](lowWaterMark uint) func(slot[K, V], slot[K, V]) slot[K, V] {
	return func(parent, child slot[K, V]) slot[K, V] {
		tracer().Debugf("balance: parent = %s, child = %s", parent, child)
		if child.node.underfull(lowWaterMark) {
			tracer().Debugf("child is underfull: %v", child)
			return parent.balance(child, lowWaterMark)
		}
		return cloneSeam(parent, child)
	}
}

func (parent slot[K, V]) balance(child slot[K, V], lowWaterMark uint) slot[K, V] {
	assertThat(len(parent.node.children) > 0, "attempt to balance parent w/ zero children")
	if !parent.leftSibling(child).underfull(lowWaterMark + 1) {
		// steal item from left sibling ⇒ rotate right
		return parent.rotateRight(parent.leftSibling(child), child)
	} else if !parent.rightSibling(child).underfull(lowWaterMark + 1) {
		// steal item from right sibling ⇒ rotate left
		return parent.rotateLeft(child, parent.rightSibling(child))
	}
	// steal item from parent and merge child with a sibling
	return merge(parent.siblings2(child))
}

// merge steals the separator item from parent and merges child with a
// sibling. Returns a new parent which may be underfull or even empty (in
// case of parent being root).
func merge[K, V any](mi mergeinfo[K, V]) slot[K, V] {
	parent := mi.parent
	assertThat(parent.len() > 0, "attempt to extract an item from an empty parent node")
	separator := parent.item()
	lsbl, rsbl := mi.left, mi.right
	cowch := lsbl.node.cloneWithCapacity(lsbl.len() + rsbl.len() + 1)
	cowch.items = append(cowch.items, separator)
	cowch.items = append(cowch.items, rsbl.items()...)
	if !cowch.isLeaf() {
		cowch.children = append(cowch.children, rsbl.node.children...)
		assertThat(len(cowch.children) == len(cowch.items)+1, "merged child has inconsistent child count")
	}
	cow := parent.node.withDeletedItem(parent.index)
	cow.children[parent.index] = &cowch // link new parent to new child
	return slot[K, V]{node: &cow, index: parent.index}
}

func (parent slot[K, V]) rotateRight(lsbl, child slot[K, V]) slot[K, V] {
	cow := parent.node.clone()
	separatorInx := parent.index - 1
	// cut rightmost item from left sibling
	cowlsbl, stolenItem, grandChild := lsbl.node.withCutRight()
	// replace separator item with item from left sibling
	separator := cow.items[separatorInx]
	cow.items[separatorInx] = stolenItem
	// insert separator item as leftmost item in child
	cowChild := child.node.withPrepended(separator, grandChild)
	// link new children of parent/cow
	cow.children[separatorInx] = &cowlsbl
	cow.children[parent.index] = &cowChild
	return slot[K, V]{node: &cow, index: parent.index}
}

func (parent slot[K, V]) rotateLeft(child, rsbl slot[K, V]) slot[K, V] {
	cow := parent.node.clone()
	separatorInx := parent.index
	// cut leftmost item from right sibling
	cowrsbl, stolenItem, grandChild := rsbl.node.withCutLeft()
	// replace separator item with item from right sibling
	separator := cow.items[separatorInx]
	cow.items[separatorInx] = stolenItem
	// insert separator item as rightmost item in child
	cowChild := child.node.withAppended(separator, grandChild)
	// link new children of parent/cow
	cow.children[parent.index] = &cowChild
	cow.children[parent.index+1] = &cowrsbl
	return slot[K, V]{node: &cow, index: parent.index}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("btree: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
