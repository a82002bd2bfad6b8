package rbtree

/*
Remarks:
--------

- Insertion rebalancing follows the classic functional formulation: the four
  red-red color patterns a recursive insert can produce one level below are
  resolved while unwinding, by rewriting them to a red node over two black
  nodes. The caller finally forces the root black.

- Deletion is the harder direction. Removing a black node leaves a
  black-height deficit in one subtree, which has to be propagated upward.
  del and deleteMin report the deficit as a boolean alongside the new
  subtree; unbalancedLeft/unbalancedRight absorb it by borrowing from the
  sibling, possibly pushing the deficit one level further up.
*/

func contains[T any](cmp Comparator[T], n *node[T], value T) bool {
	for n != nil {
		c := cmp(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// insert descends to the insertion point and rebalances while unwinding.
// Inserting a value which is already present returns the node unchanged, so
// that identity comparison against the old subtree detects the no-op.
// The result may have a red root; the public caller repaints it black.
func insert[T any](cmp Comparator[T], n *node[T], value T) *node[T] {
	if n == nil {
		return &node[T]{color: Red, value: value}
	}
	c := cmp(value, n.value)
	switch {
	case c < 0:
		l := insert(cmp, n.left, value)
		if l == n.left {
			return n
		}
		return balanceLeft(n.color, l, n.value, n.right)
	case c > 0:
		r := insert(cmp, n.right, value)
		if r == n.right {
			return n
		}
		return balanceRight(n.color, n.left, n.value, r)
	default:
		return n
	}
}

// balanceLeft builds a node from the given parts and resolves a red-red
// violation in the left subtree.
func balanceLeft[T any](c Color, l *node[T], v T, r *node[T]) *node[T] {
	if c == Black && isRed(l) {
		if isRed(l.left) {
			ll := l.left
			return &node[T]{color: Red,
				left:  &node[T]{color: Black, left: ll.left, value: ll.value, right: ll.right},
				value: l.value,
				right: &node[T]{color: Black, left: l.right, value: v, right: r},
			}
		}
		if isRed(l.right) {
			lr := l.right
			return &node[T]{color: Red,
				left:  &node[T]{color: Black, left: l.left, value: l.value, right: lr.left},
				value: lr.value,
				right: &node[T]{color: Black, left: lr.right, value: v, right: r},
			}
		}
	}
	return &node[T]{color: c, left: l, value: v, right: r}
}

// balanceRight is the mirror image of balanceLeft.
func balanceRight[T any](c Color, l *node[T], v T, r *node[T]) *node[T] {
	if c == Black && isRed(r) {
		if isRed(r.right) {
			rr := r.right
			return &node[T]{color: Red,
				left:  &node[T]{color: Black, left: l, value: v, right: r.left},
				value: r.value,
				right: &node[T]{color: Black, left: rr.left, value: rr.value, right: rr.right},
			}
		}
		if isRed(r.left) {
			rl := r.left
			return &node[T]{color: Red,
				left:  &node[T]{color: Black, left: l, value: v, right: rl.left},
				value: rl.value,
				right: &node[T]{color: Black, left: rl.right, value: r.value, right: r.right},
			}
		}
	}
	return &node[T]{color: c, left: l, value: v, right: r}
}

// del removes value from n. The boolean reports a black-height deficit which
// the caller has to absorb. Deleting an absent value rebuilds the search
// path but leaves the contents unchanged.
func del[T any](cmp Comparator[T], n *node[T], value T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	c := cmp(value, n.value)
	switch {
	case c < 0:
		l, d := del(cmp, n.left, value)
		if !d {
			return &node[T]{color: n.color, left: l, value: n.value, right: n.right}, false
		}
		return unbalancedRight(n.color, l, n.value, n.right)
	case c > 0:
		r, d := del(cmp, n.right, value)
		if !d {
			return &node[T]{color: n.color, left: n.left, value: n.value, right: r}, false
		}
		return unbalancedLeft(n.color, n.left, n.value, r)
	default:
		if n.right == nil {
			if n.color == Black {
				return blackify(n.left)
			}
			return n.left, false
		}
		r, d, m := deleteMin(n.right)
		if !d {
			return &node[T]{color: n.color, left: n.left, value: m, right: r}, false
		}
		return unbalancedLeft(n.color, n.left, m, r)
	}
}

// deleteMin removes the smallest value of n and returns it together with
// the remaining tree and the deficit flag. n must not be a leaf.
func deleteMin[T any](n *node[T]) (*node[T], bool, T) {
	if n.left == nil {
		if n.color == Red {
			return n.right, false, n.value
		}
		if n.right == nil {
			return nil, true, n.value
		}
		// black node with a single child: the child is a red leaf node
		return n.right.paint(Black), false, n.value
	}
	l, d, m := deleteMin(n.left)
	if !d {
		return &node[T]{color: n.color, left: l, value: n.value, right: n.right}, false, m
	}
	t, d2 := unbalancedRight(n.color, l, n.value, n.right)
	return t, d2, m
}

// blackify repaints a red root black, which absorbs one unit of deficit.
// For a black or empty tree the deficit remains and is reported.
func blackify[T any](n *node[T]) (*node[T], bool) {
	if isRed(n) {
		return n.paint(Black), false
	}
	return n, true
}

// unbalancedLeft rebuilds a node whose right subtree is one black level
// short, borrowing from the left sibling.
func unbalancedLeft[T any](c Color, l *node[T], v T, r *node[T]) (*node[T], bool) {
	assertThat(l != nil, "deficit sibling must not be empty")
	if l.color == Black {
		return balanceLeft(Black, l.paint(Red), v, r), c == Black
	}
	// l is red, so c is black and l.right is a non-empty black node
	assertThat(c == Black && l.right != nil && l.right.color == Black,
		"delete rebalancing failed: invariant violated at red left sibling")
	return &node[T]{color: Black,
		left:  l.left,
		value: l.value,
		right: balanceLeft(Black, l.right.paint(Red), v, r),
	}, false
}

// unbalancedRight is the mirror image of unbalancedLeft: the left subtree
// is one black level short and borrows from the right sibling.
func unbalancedRight[T any](c Color, l *node[T], v T, r *node[T]) (*node[T], bool) {
	assertThat(r != nil, "deficit sibling must not be empty")
	if r.color == Black {
		return balanceRight(Black, l, v, r.paint(Red)), c == Black
	}
	// r is red, so c is black and r.left is a non-empty black node
	assertThat(c == Black && r.left != nil && r.left.color == Black,
		"delete rebalancing failed: invariant violated at red right sibling")
	return &node[T]{color: Black,
		left:  balanceRight(Black, l, v, r.left.paint(Red)),
		value: r.value,
		right: r.right,
	}, false
}
