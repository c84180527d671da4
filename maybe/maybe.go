// Package maybe provides an optional value: Just carries a payload,
// None carries nothing. Callers branch with Fold or the comma-ok Get
// before reaching the payload, so there is no nil to dereference and
// no error value to thread through lookups that can simply miss.
package maybe

import "iter"

// Maybe holds zero or one value of T. The zero value is the empty
// Maybe, so None costs no allocation for any instantiation; that zero
// struct is the one shared empty representation this package has.
type Maybe[T any] struct {
	value T
	full  bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, full: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

func (m Maybe[T]) IsFull() bool {
	return m.full
}

func (m Maybe[T]) IsEmpty() bool {
	return !m.full
}

// Get is the comma-ok extraction; the payload is only meaningful when
// the second result is true.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.full
}

func (m Maybe[T]) GetOr(fallback T) T {
	if m.full {
		return m.value
	}
	return fallback
}

// ToPtr returns a pointer to a copy of the payload, or nil when empty.
func (m Maybe[T]) ToPtr() *T {
	if !m.full {
		return nil
	}
	v := m.value
	return &v
}

func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Just(*p)
}

// Try adapts Go's (value, error) convention, discarding the error.
// Use sum.FromError when the error itself matters.
func Try[T any](v T, err error) Maybe[T] {
	if err != nil {
		return None[T]()
	}
	return Just(v)
}

// Fold invokes full with the payload when present, otherwise empty,
// and returns that handler's result.
func Fold[T, R any](m Maybe[T], full func(T) R, empty func() R) R {
	if m.full {
		return full(m.value)
	}
	return empty()
}

func Map[T, R any](m Maybe[T], f func(T) R) Maybe[R] {
	if m.full {
		return Just(f(m.value))
	}
	return None[R]()
}

func Bind[T, R any](m Maybe[T], f func(T) Maybe[R]) Maybe[R] {
	if m.full {
		return f(m.value)
	}
	return None[R]()
}

func Filter[T any](m Maybe[T], pred func(T) bool) Maybe[T] {
	if m.full && pred(m.value) {
		return m
	}
	return None[T]()
}

func Or[T any](m, alt Maybe[T]) Maybe[T] {
	if m.full {
		return m
	}
	return alt
}

// Iter yields the payload once when present, nothing otherwise.
func Iter[T any](m Maybe[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.full {
			yield(m.value)
		}
	}
}
