/*
Package maybe implements an optional-value container. A Maybe can help with
optional arguments, absent results and records with optional fields, without
resorting to nil-pointer conventions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package maybe

import "errors"

// ErrNothingValue is carried by the panic raised when Get is called on
// Nothing: there is no value to return. Use Unwrap or WithDefault when
// absence is expected.
var ErrNothingValue = errors.New("maybe: no value in Nothing")

// Maybe is a container holding either one value of type T (Just) or no
// value at all (Nothing).
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() T
	Unwrap() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Filter(func(T) bool) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value of type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Get returns the contained value. Calling Get on Nothing panics with
// ErrNothingValue.
func (m maybe[T]) Get() T {
	if !m.tag {
		panic(ErrNothingValue)
	}
	return m.value
}

// Unwrap returns the contained value, with ok=false for Nothing.
func (m maybe[T]) Unwrap() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Filter keeps a Just value only if predicate holds for it.
func (m maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.tag && !predicate(m.value) {
		return Nothing[T]()
	}
	return m
}

// AndThen chains computations which each may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if any. Unlike the Map method it is not
// restricted to an endofunction, the result type may differ.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports a switch-based pattern matching style:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …
//     case m.Nothing():
//         …
//     }
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
