package rbtree

/*
Remarks:
--------

- Union, Intersection and Difference all follow the same divide-and-conquer
  scheme: take the root value of one tree as pivot, split the other tree
  into its values below and above the pivot (an O(log n) walk, not a
  traversal), combine the halves recursively, and reassemble.

- Reassembly must not naively construct a node from the two halves, since
  recursive combination leaves them with arbitrary black heights. join
  (with a pivot) and merge (without one) descend into the taller side until
  they find a subtree of matching black height, attach there, and repair
  the resulting red-red violations with the insertion balance while
  unwinding.

- All trees handed between these functions are black-rooted (split and the
  combinators repaint where needed); only the interior attachment points may
  be red, which the case analysis accounts for.
*/

// split partitions n into the values ordering below v and the values
// ordering above v. An element equal to v is dropped. Both parts come back
// black-rooted and balanced.
func split[T any](cmp Comparator[T], n *node[T], v T) (*node[T], *node[T]) {
	if n == nil {
		return nil, nil
	}
	c := cmp(v, n.value)
	switch {
	case c < 0:
		l, r := split(cmp, n.left, v)
		return l, join(cmp, r, n.value, n.right.paint(Black))
	case c > 0:
		l, r := split(cmp, n.right, v)
		return join(cmp, n.left.paint(Black), n.value, l), r
	default:
		return n.left.paint(Black), n.right.paint(Black)
	}
}

// join builds a balanced tree from the left part t1, the pivot v and the
// right part t2, where every value of t1 orders below v and every value of
// t2 above. It descends into the taller operand to find an attachment
// subtree of matching black height.
func join[T any](cmp Comparator[T], t1 *node[T], v T, t2 *node[T]) *node[T] {
	if t1 == nil {
		return insert(cmp, t2, v).paint(Black)
	}
	if t2 == nil {
		return insert(cmp, t1, v).paint(Black)
	}
	h1, h2 := blackHeight(t1), blackHeight(t2)
	switch {
	case h1 < h2:
		return joinLT(t1, v, t2, h1, h2).paint(Black)
	case h1 > h2:
		return joinGT(t1, v, t2, h1, h2).paint(Black)
	default:
		return &node[T]{color: Black, left: t1, value: v, right: t2}
	}
}

// joinGT attaches v and the lower tree t2 on the right spine of the taller
// tree n1, at the subtree whose black height equals h2.
func joinGT[T any](n1 *node[T], v T, n2 *node[T], h1, h2 int) *node[T] {
	if h1 == h2 {
		return &node[T]{color: Red, left: n1, value: v, right: n2}
	}
	h := h1
	if n1.color == Black {
		h--
	}
	m := joinGT(n1.right, v, n2, h, h2)
	return balanceRight(n1.color, n1.left, n1.value, m)
}

// joinLT is the mirror image of joinGT, descending the left spine of the
// taller tree n2.
func joinLT[T any](n1 *node[T], v T, n2 *node[T], h1, h2 int) *node[T] {
	if h1 == h2 {
		return &node[T]{color: Red, left: n1, value: v, right: n2}
	}
	h := h2
	if n2.color == Black {
		h--
	}
	m := joinLT(n1, v, n2.left, h1, h)
	return balanceLeft(n2.color, m, n2.value, n2.right)
}

// merge combines two trees where every value of t1 orders below every value
// of t2, with no pivot in hand. The smallest value of the equal-height
// attachment pair serves as the glue node (see mergeEQ).
func merge[T any](t1, t2 *node[T]) *node[T] {
	if t1 == nil {
		return t2
	}
	if t2 == nil {
		return t1
	}
	h1, h2 := blackHeight(t1), blackHeight(t2)
	switch {
	case h1 < h2:
		return mergeLT(t1, t2, h1, h2).paint(Black)
	case h1 > h2:
		return mergeGT(t1, t2, h1, h2).paint(Black)
	default:
		return mergeEQ(t1, t2).paint(Black)
	}
}

// mergeGT descends the right spine of the taller tree n1 to a black subtree
// of black height h2 and glues n2 there.
func mergeGT[T any](n1, n2 *node[T], h1, h2 int) *node[T] {
	if h1 == h2 && n1.color == Black {
		return mergeEQ(n1, n2)
	}
	h := h1
	if n1.color == Black {
		h--
	}
	m := mergeGT(n1.right, n2, h, h2)
	return balanceRight(n1.color, n1.left, n1.value, m)
}

// mergeLT is the mirror image of mergeGT, descending the left spine of the
// taller tree n2.
func mergeLT[T any](n1, n2 *node[T], h1, h2 int) *node[T] {
	if h1 == h2 && n2.color == Black {
		return mergeEQ(n1, n2)
	}
	h := h2
	if n2.color == Black {
		h--
	}
	m := mergeLT(n1, n2.left, h1, h)
	return balanceLeft(n2.color, m, n2.value, n2.right)
}

// mergeEQ glues two black-rooted trees of equal black height by pulling the
// minimum out of n2 to serve as the dividing value. If the extraction costs
// n2 a black level, one level is taken from n1 as well, by case analysis on
// the colors of n1's children.
func mergeEQ[T any](n1, n2 *node[T]) *node[T] {
	t2, d, m := deleteMin(n2)
	if !d {
		return &node[T]{color: Red, left: n1, value: m, right: t2}
	}
	if isRed(n1.right) {
		rr := n1.right
		return &node[T]{color: Red,
			left:  &node[T]{color: Black, left: n1.left, value: n1.value, right: rr.left},
			value: rr.value,
			right: &node[T]{color: Black, left: rr.right, value: m, right: t2},
		}
	}
	if isRed(n1.left) {
		return &node[T]{color: Red,
			left:  n1.left.paint(Black),
			value: n1.value,
			right: &node[T]{color: Black, left: n1.right, value: m, right: t2},
		}
	}
	return &node[T]{color: Black, left: n1.paint(Red), value: m, right: t2}
}

func union[T any](cmp Comparator[T], t1, t2 *node[T]) *node[T] {
	if t2 == nil {
		return t1
	}
	if t1 == nil {
		return t2.paint(Black)
	}
	l, r := split(cmp, t1, t2.value)
	return join(cmp, union(cmp, l, t2.left), t2.value, union(cmp, r, t2.right))
}

func intersection[T any](cmp Comparator[T], t1, t2 *node[T]) *node[T] {
	if t1 == nil || t2 == nil {
		return nil
	}
	l, r := split(cmp, t1, t2.value)
	il := intersection(cmp, l, t2.left)
	ir := intersection(cmp, r, t2.right)
	if contains(cmp, t1, t2.value) {
		return join(cmp, il, t2.value, ir)
	}
	return merge(il, ir)
}

func difference[T any](cmp Comparator[T], t1, t2 *node[T]) *node[T] {
	if t1 == nil || t2 == nil {
		return t1
	}
	l, r := split(cmp, t1, t2.value)
	return merge(difference(cmp, l, t2.left), difference(cmp, r, t2.right))
}
