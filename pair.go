package vavr

// --- Matchable -------------------------------------------------------------

// Matchable is an interface for types which can be pattern-matched.
type Matchable[T, A, B comparable] interface {
	Matches(other T) bool
	Decompose() (A, B)
}

// --- Pair ------------------------------------------------------------------

// Pair holds two values of possibly different types.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P constructs a Pair, inferring the types from the arguments.
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return p.Left == other.Left && p.Right == other.Right
}

func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Swap returns the pair with its sides exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{p.Right, p.Left}
}

var _ Matchable[Pair[int, int], int, int] = Pair[int, int]{1, 2}
var _ Matchable[Pair[int, int], int, int] = P(1, 2)
