package vavr_test

import (
	"fmt"
	"testing"

	"github.com/yutui1281461/vavr"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	// h := Compose[int, float32, string](f, g) // works, but type-inference helps
	h := vavr.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConst(t *testing.T) {
	seven := vavr.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
}

func TestUnit(t *testing.T) {
	nothing := vavr.Unit(7)
	if nothing != 0 {
		t.Logf("Unit(7) = %v", nothing)
		t.Error("expected Unit(7) to be nothing = 0")
	}
}

func TestPair(t *testing.T) {
	p := vavr.P(1, "one")
	if !p.Matches(vavr.Pair[int, string]{1, "one"}) {
		t.Error("expected pairs with equal sides to match, don't")
	}
	if p.Matches(vavr.P(2, "one")) {
		t.Error("did not expect pairs with different sides to match")
	}
	a, b := p.Decompose()
	if a != 1 || b != "one" {
		t.Errorf("expected decomposition (1, \"one\"), have (%v, %q)", a, b)
	}
	q := p.Swap()
	if q.Left != "one" || q.Right != 1 {
		t.Errorf("expected swapped pair (\"one\", 1), have %v", q)
	}
}
