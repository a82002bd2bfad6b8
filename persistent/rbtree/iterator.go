package rbtree

// Iterator walks a tree in comparator order. It keeps an explicit stack of
// the nodes still to visit, bounded by the tree height, so that iteration
// over large trees does not rely on call-stack depth. Iterators are
// independent of each other and never modify the tree; a fresh call to
// Tree.Iterator restarts from the smallest value.
type Iterator[T any] struct {
	stack []*node[T]
}

// Iterator returns a new iterator positioned before the smallest value.
func (t Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{stack: make([]*node[T], 0, 2*blackHeight(t.root)+1)}
	it.descend(t.root)
	return it
}

func (it *Iterator[T]) descend(n *node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// Next returns the next value in order, with ok=false once the iterator is
// exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.descend(n.right)
	return n.value, true
}

// Values collects the remaining values of the iterator into a slice.
func (it *Iterator[T]) Values() []T {
	var values []T
	for {
		v, ok := it.Next()
		if !ok {
			return values
		}
		values = append(values, v)
	}
}
