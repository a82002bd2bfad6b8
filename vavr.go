/*
Package vavr provides building blocks for functional programming in Go:
small function combinators in this package, optional values and two-valued
sums in packages maybe, either and result, and persistent collections with
structural sharing under persistent/….

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package vavr

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
