/*
Package either implements a two-valued sum type. An Either holds exactly one
of two values: a Left of type L or a Right of type R. By convention Right
carries the expected outcome and Left the deviant one, but the type itself
is symmetric.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package either

// Either holds either a value of type L or a value of type R.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	IsRight() bool
}

type either[L, R any] struct {
	left  L
	right R
	isR   bool
}

// Left wraps a value of the left alternative.
func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

// Right wraps a value of the right alternative.
func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r, isR: true}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

func (e either[L, R]) IsLeft() bool {
	return !e.isR
}

func (e either[L, R]) IsRight() bool {
	return e.isR
}

// MapRight applies f to a Right value and passes a Left through unchanged.
func MapRight[L, R, S any](f func(R) S, x Either[L, R]) Either[L, S] {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Right(&r):
		return Right[L, S](f(r))
	case m.Left(&l):
	}
	return Left[L, S](l)
}

// MapLeft applies f to a Left value and passes a Right through unchanged.
func MapLeft[L, R, S any](f func(L) S, x Either[L, R]) Either[S, R] {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return Left[S, R](f(l))
	case m.Right(&r):
	}
	return Right[S, R](r)
}

// Fold collapses an Either into a single value, applying onLeft or onRight
// to whichever alternative is present.
func Fold[L, R, S any](onLeft func(L) S, onRight func(R) S, x Either[L, R]) S {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return onLeft(l)
	case m.Right(&r):
	}
	return onRight(r)
}

// --- Matching --------------------------------------------------------------

// Matcher supports a switch-based pattern matching style:
//
//     var l int
//     var r string
//     switch m := x.Match(); m {
//     case m.Left(&l):
//         …
//     case m.Right(&r):
//         …
//     }
//
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !em.e.isR {
		*l = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if em.e.isR {
		*r = em.e.right
		return em
	}
	return nil
}
