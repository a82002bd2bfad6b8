package rbtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func intCmp(a, b int) int {
	return a - b
}

func of(values ...int) Tree[int] {
	return Of(intCmp, values...)
}

// --- Empty tree --------------------------------------------------------------

func TestTreeCreateEmptyTree(t *testing.T) {
	tree := Empty[int](intCmp)
	if !tree.IsEmpty() {
		t.Error("expected fresh tree to be empty, isn't")
	}
	if tree.Size() != 0 {
		t.Errorf("expected empty tree to have size 0, has %d", tree.Size())
	}
	if tree.Color() != Black {
		t.Errorf("expected empty tree to be black, is %s", tree.Color())
	}
	if tree.String() != "()" {
		t.Errorf("expected empty tree to render as (), is %s", tree.String())
	}
}

func TestTreeFailValueOfEmpty(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Value() on empty tree to panic, didn't")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyTree) {
			t.Errorf("expected panic to carry ErrEmptyTree, is %v", r)
		}
	}()
	Empty[int](intCmp).Value()
}

func TestTreeFailLeftOfEmpty(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Left() on empty tree to panic, didn't")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrLeafChildren) {
			t.Errorf("expected panic to carry ErrLeafChildren, is %v", r)
		}
	}()
	Empty[int](intCmp).Left()
}

func TestTreeFailRightOfEmpty(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Right() on empty tree to panic, didn't")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrLeafChildren) {
			t.Errorf("expected panic to carry ErrLeafChildren, is %v", r)
		}
	}()
	Empty[int](intCmp).Right()
}

// Value() on a leaf and Left()/Right() on a leaf raise distinguishable kinds.
func TestTreeEmptyErrorKindsDiffer(t *testing.T) {
	if errors.Is(ErrEmptyTree, ErrLeafChildren) {
		t.Error("expected the two empty-tree error kinds to be distinct, aren't")
	}
}

// --- Contains ----------------------------------------------------------------

func TestTreeContains(t *testing.T) {
	tree := of(1, 2, 3)
	if !tree.Contains(2) {
		t.Error("expected tree of 1,2,3 to contain 2, doesn't")
	}
	if tree.Contains(0) {
		t.Error("expected tree of 1,2,3 not to contain 0, does")
	}
	if Empty[int](intCmp).Contains(1) {
		t.Error("expected empty tree not to contain 1, does")
	}
}

// --- Insert ------------------------------------------------------------------

// Golden regression for the exact rebalancing steps.
func TestTreeInsert_2_1_4_5_9_3_6_7(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vavr.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	steps := []struct {
		value int
		shape string
		size  int
	}{
		{2, "(B:2)", 1},
		{1, "(B:2 R:1)", 2},
		{4, "(B:2 R:1 R:4)", 3},
		{5, "(B:4 (B:2 R:1) B:5)", 4},
		{9, "(B:4 (B:2 R:1) (B:5 R:9))", 5},
		{3, "(B:4 (B:2 R:1 R:3) (B:5 R:9))", 6},
		{6, "(B:4 (B:2 R:1 R:3) (R:6 B:5 B:9))", 7},
		{7, "(B:4 (B:2 R:1 R:3) (R:6 B:5 (B:9 R:7)))", 8},
	}
	tree := Empty[int](intCmp)
	for _, step := range steps {
		tree = tree.Insert(step.value)
		if tree.String() != step.shape {
			t.Logf("tree =\n%s", printTree(tree))
			t.Fatalf("after insert of %d expected shape %s, is %s", step.value, step.shape, tree.String())
		}
		if tree.Size() != step.size {
			t.Errorf("after insert of %d expected size %d, is %d", step.value, step.size, tree.Size())
		}
	}
}

func TestTreeInsertContainedValueKeepsIdentity(t *testing.T) {
	tree := of(1, 2, 3)
	inserted := tree.Insert(2)
	if inserted.root != tree.root {
		t.Error("expected re-insert of contained value to return the same root, doesn't")
	}
	if !inserted.Equals(tree) {
		t.Error("expected re-insert of contained value to be equal to original, isn't")
	}
}

// Inserting into an empty tree must not invoke the comparator; only a second
// insert does. A comparator which rejects the sentinel makes the asymmetry
// observable.
func TestTreeInsertSentinelIntoEmptyTreeSkipsComparator(t *testing.T) {
	cmp := func(a, b *int) int {
		if a == nil || b == nil {
			panic("comparator: nil operand")
		}
		return *a - *b
	}
	tree := Empty[*int](cmp).Insert(nil) // must not panic
	if tree.Size() != 1 {
		t.Errorf("expected tree with one sentinel value, has size %d", tree.Size())
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected second sentinel insert to panic in the comparator, didn't")
		}
	}()
	tree.Insert(nil)
}

// --- Delete ------------------------------------------------------------------

func TestTreeDelete_2_from_2_1_4_5_9_3_6_7(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vavr.rbtree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := of(2, 1, 4, 5, 9, 3, 6, 7)
	deleted := tree.Delete(2)
	if deleted.String() != "(B:4 (B:3 R:1) (R:6 B:5 (B:9 R:7)))" {
		t.Logf("tree =\n%s", printTree(deleted))
		t.Errorf("unexpected shape after delete of 2: %s", deleted.String())
	}
	if deleted.Size() != 7 {
		t.Errorf("expected size 7 after delete, is %d", deleted.Size())
	}
	if tree.Size() != 8 {
		t.Errorf("expected original tree to keep size 8, has %d", tree.Size())
	}
}

func TestTreeDeleteAbsentValueIsNoop(t *testing.T) {
	tree := of(1, 2, 3)
	deleted := tree.Delete(7)
	if !deleted.Equals(tree) {
		t.Errorf("expected delete of absent value to keep contents, is %s", deleted.String())
	}
}

func TestTreeDeleteFromEmptyTree(t *testing.T) {
	tree := Empty[int](intCmp).Delete(7)
	if !tree.IsEmpty() {
		t.Error("expected delete on empty tree to stay empty, doesn't")
	}
}

func TestTreeDeleteAll(t *testing.T) {
	tree := of(2, 1, 4, 5, 9, 3, 6, 7)
	for _, v := range []int{5, 9, 1, 7, 2, 6, 3, 4} {
		tree = tree.Delete(v)
		if tree.Contains(v) {
			t.Errorf("expected %d to be gone after delete, isn't", v)
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("expected tree to be empty after deleting every value, is %s", tree.String())
	}
}

// --- Min / Max ----------------------------------------------------------------

func TestTreeMinMax(t *testing.T) {
	tree := of(7, 1, 6, 2, 5, 3, 4)
	if min, ok := tree.Min(); !ok || min != 1 {
		t.Errorf("expected min to be 1, is %d (ok=%v)", min, ok)
	}
	if max, ok := tree.Max(); !ok || max != 7 {
		t.Errorf("expected max to be 7, is %d (ok=%v)", max, ok)
	}
	if _, ok := Empty[int](intCmp).Min(); ok {
		t.Error("expected no min for empty tree, got one")
	}
}

// --- Iteration ----------------------------------------------------------------

func TestTreeIterateEmptyTree(t *testing.T) {
	it := Empty[int](intCmp).Iterator()
	if _, ok := it.Next(); ok {
		t.Error("expected iterator of empty tree to be exhausted, isn't")
	}
}

func TestTreeIterateInOrder(t *testing.T) {
	tree := of(7, 1, 6, 2, 5, 3, 4)
	values := tree.Iterator().Values()
	if len(values) != 7 {
		t.Fatalf("expected 7 values from iterator, got %d", len(values))
	}
	for i, v := range values {
		if v != i+1 {
			t.Errorf("expected value #%d to be %d, is %d", i, i+1, v)
		}
	}
}

func TestTreeIteratorIsRestartable(t *testing.T) {
	tree := of(3, 1, 2)
	first := tree.Iterator().Values()
	second := tree.Iterator().Values()
	if len(first) != len(second) {
		t.Fatal("expected two traversals to be independent and equal, aren't")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("traversals diverge at #%d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestTreeEach(t *testing.T) {
	tree := of(3, 1, 2)
	var collected []int
	tree.Each(func(v int) bool {
		collected = append(collected, v)
		return v < 2 // stop after reaching 2
	})
	if len(collected) != 2 || collected[0] != 1 || collected[1] != 2 {
		t.Errorf("expected Each to visit 1,2 and stop, visited %v", collected)
	}
}

// --- Equality -----------------------------------------------------------------

func TestTreeShapeIndependentEquality(t *testing.T) {
	t1 := of(1, 2, 3, 4, 5, 6, 7, 8)
	t2 := of(8, 7, 6, 5, 4, 3, 2, 1)
	if t1.String() == t2.String() {
		t.Log("shapes happen to coincide; equality still has to hold")
	}
	if !t1.Equals(t2) {
		t.Errorf("expected trees with equal elements to be equal:\n%s\n%s", t1, t2)
	}
	if t1.Equals(t2.Insert(9)) {
		t.Error("expected trees with different elements to differ, don't")
	}
}

// --- Structural accessors -------------------------------------------------------

func TestTreeStructuralAccessors(t *testing.T) {
	tree := of(2, 1, 4, 5) // (B:4 (B:2 R:1) B:5)
	if tree.Value() != 4 {
		t.Errorf("expected root value 4, is %d", tree.Value())
	}
	if tree.Color() != Black {
		t.Errorf("expected root to be black, is %s", tree.Color())
	}
	left := tree.Left()
	if left.Value() != 2 || left.Color() != Black {
		t.Errorf("expected left subtree (B:2 R:1), is %s", left.String())
	}
	if left.Left().Color() != Red {
		t.Errorf("expected left-left node to be red, is %s", left.Left().Color())
	}
	if !tree.Right().Right().IsEmpty() {
		t.Error("expected right subtree of leaf node to be empty, isn't")
	}
}

// A tree may order the same element type differently than another tree.
func TestTreeReversedComparator(t *testing.T) {
	reversed := func(a, b int) int { return b - a }
	tree := Of(reversed, 1, 2, 3)
	values := tree.Iterator().Values()
	if values[0] != 3 || values[1] != 2 || values[2] != 1 {
		t.Errorf("expected reversed order 3,2,1, is %v", values)
	}
}

// ---------------------------------------------------------------------------

func printTree[T any](tree Tree[T]) string {
	p := tp.New()
	ppt(p, tree.root)
	return p.String()
}

func ppt[T any](p tp.Tree, node *node[T]) {
	if node == nil {
		return
	}
	if node.left == nil && node.right == nil {
		p.AddNode(node.lisp())
		return
	}
	branch := p.AddBranch(node.lisp())
	ppt(branch, node.left)
	ppt(branch, node.right)
}
