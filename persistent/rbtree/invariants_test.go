package rbtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// assertInvariants checks the red-black invariants and the ordering of a
// tree: no red node has a red child, every root-to-leaf path carries the
// same number of black nodes, and in-order traversal is strictly increasing.
func assertInvariants[T any](t *testing.T, tree Tree[T]) {
	t.Helper()
	checkNode(t, tree.root)
	values := tree.Iterator().Values()
	for i := 1; i < len(values); i++ {
		if tree.cmp(values[i-1], values[i]) >= 0 {
			t.Fatalf("in-order traversal not strictly increasing at #%d: %v", i, values)
		}
	}
}

// checkNode returns the black height of n and fails the test on any
// invariant violation below n.
func checkNode[T any](t *testing.T, n *node[T]) int {
	t.Helper()
	if n == nil {
		return 0
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		t.Fatalf("red node %v has a red child", n.value)
	}
	hl := checkNode(t, n.left)
	hr := checkNode(t, n.right)
	if hl != hr {
		t.Fatalf("black height differs below %v: %d vs %d", n.value, hl, hr)
	}
	if n.color == Black {
		return hl + 1
	}
	return hl
}

func TestInvariantsUnderRandomInsertDelete(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := Empty[int](intCmp)
	reference := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := rng.Intn(300)
		if rng.Intn(3) == 0 {
			tree = tree.Delete(v)
			delete(reference, v)
		} else {
			tree = tree.Insert(v)
			reference[v] = true
		}
	}
	assertInvariants(t, tree)
	require.Equal(t, len(reference), tree.Size(), "tree size diverged from reference")
	for v := range reference {
		require.True(t, tree.Contains(v), "expected tree to contain %d", v)
	}
	values := tree.Iterator().Values()
	expected := make([]int, 0, len(reference))
	for v := range reference {
		expected = append(expected, v)
	}
	sort.Ints(expected)
	require.Equal(t, expected, values, "in-order sequence diverged from reference")
}

func TestInvariantsInsertIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tree := Empty[int](intCmp)
	for i := 0; i < 200; i++ {
		tree = tree.Insert(rng.Intn(100))
	}
	for v := 0; v < 100; v++ {
		once := tree.Insert(v)
		twice := once.Insert(v)
		require.True(t, once.root == twice.root, "expected t.Insert(%d).Insert(%d) to keep the root identity", v, v)
		require.True(t, once.Equals(tree.Insert(v)), "expected insert to be idempotent for %d", v)
	}
}

func TestInvariantsStructuralSharing(t *testing.T) {
	tree := of(2, 1, 4, 5, 9, 3, 6, 7)
	grown := tree.Insert(8)
	// the untouched left subtree is shared by reference between versions
	require.True(t, tree.root.left == grown.root.left, "expected unchanged subtree to be shared, isn't")
	require.False(t, tree.Contains(8), "expected original tree to stay unchanged")
}

func TestInvariantsUnderRandomSetAlgebra(t *testing.T) {
	rng := rand.New(rand.NewSource(1234))
	for round := 0; round < 50; round++ {
		a, b := Empty[int](intCmp), Empty[int](intCmp)
		inA, inB := map[int]bool{}, map[int]bool{}
		for i := 0; i < 120; i++ {
			v := rng.Intn(200)
			if rng.Intn(2) == 0 {
				a = a.Insert(v)
				inA[v] = true
			} else {
				b = b.Insert(v)
				inB[v] = true
			}
		}
		union := a.Union(b)
		intersection := a.Intersection(b)
		difference := a.Difference(b)
		assertInvariants(t, union)
		assertInvariants(t, intersection)
		assertInvariants(t, difference)
		for v := 0; v < 200; v++ {
			require.Equal(t, inA[v] || inB[v], union.Contains(v), "union membership of %d", v)
			require.Equal(t, inA[v] && inB[v], intersection.Contains(v), "intersection membership of %d", v)
			require.Equal(t, inA[v] && !inB[v], difference.Contains(v), "difference membership of %d", v)
		}
	}
}

func TestInvariantsShapeIndependentEqualityUnderShuffle(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	values := rng.Perm(64)
	t1 := Of(intCmp, values...)
	rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	t2 := Of(intCmp, values...)
	require.True(t, t1.Equals(t2), "expected equal trees independent of insertion order")
	assertInvariants(t, t1)
	assertInvariants(t, t2)
}
