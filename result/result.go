/*
Package result implements the outcome of a computation that may fail: either
a value (Ok) or an error (Err). Result is a close cousin of the two-valued
sum of package either, specialized to Go's error convention.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package result

import "github.com/yutui1281461/vavr/maybe"

// Result holds either a value of type T or an error.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Result[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps the value of a successful computation.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps the error of a failed computation.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault returns the contained value, or def for an Err.
func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map applies f to the value of an Ok and passes an Err through unchanged.
func (r result[T]) Map(f func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return Ok(f(r.value))
}

// AndThen chains computations which each may fail. The first error wins.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

// ToMaybe forgets the error of an Err, keeping just the presence or absence
// of a value.
func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	case m.Err(&err):
	}
	return maybe.Nothing[T]()
}

// FromMaybe turns an absent value into err.
func FromMaybe[T any](x maybe.Maybe[T], err error) Result[T] {
	if v, ok := x.Unwrap(); ok {
		return Ok(v)
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

// Matcher supports a switch-based pattern matching style:
//
//     var v int
//     var err error
//     switch m := x.Match(); m {
//     case m.Ok(&v):
//         …
//     case m.Err(&err):
//         …
//     }
//
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
