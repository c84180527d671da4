// Package iterator provides serial pull iterators whose partial
// operations return maybe.Maybe instead of a bare comma-ok, and whose
// fallible operations surface failures as sum values instead of
// dropping them.
package iterator

import (
	"iter"

	"lasuma"
	"lasuma/maybe"
	"lasuma/sum"
)

type Iterator[E any] interface {
	Next() (E, bool)
}

// Iter bridges to the standard library iterator so callers can range
// over any Iterator directly.
func Iter[E any](it Iterator[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			if !yield(e) {
				return
			}
		}
	}
}

func Iter2[K, V any](it Iterator[lasuma.Pair[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p.Split()) {
				return
			}
		}
	}
}

type funcIterator[E any] struct {
	next func() (E, bool)
}

func (it *funcIterator[E]) Next() (E, bool) {
	return it.next()
}

func FromSlice[E any](data []E) Iterator[E] {
	cursor := 0
	return &funcIterator[E]{next: func() (E, bool) {
		if cursor < len(data) {
			i := cursor
			cursor++
			return data[i], true
		}
		var zero E
		return zero, false
	}}
}

// FromMap yields the entries as pairs. Order follows map iteration and
// is fixed when the iterator is created.
func FromMap[K comparable, V any](data map[K]V) Iterator[lasuma.Pair[K, V]] {
	keys := make([]K, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	cursor := 0
	return &funcIterator[lasuma.Pair[K, V]]{next: func() (lasuma.Pair[K, V], bool) {
		if cursor < len(keys) {
			k := keys[cursor]
			cursor++
			return lasuma.MakePair(k, data[k]), true
		}
		var zero lasuma.Pair[K, V]
		return zero, false
	}}
}

// FromMaybe yields the payload once when full, nothing when empty.
func FromMaybe[E any](m maybe.Maybe[E]) Iterator[E] {
	done := false
	return &funcIterator[E]{next: func() (E, bool) {
		if done {
			var zero E
			return zero, false
		}
		done = true
		if v, ok := m.Get(); ok {
			return v, true
		}
		var zero E
		return zero, false
	}}
}

type filterIterator[E any] struct {
	input Iterator[E]
	keep  func(E) bool
}

func (it *filterIterator[E]) Next() (E, bool) {
	for e, ok := it.input.Next(); ok; e, ok = it.input.Next() {
		if it.keep(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}

func Filter[E any](it Iterator[E], keep func(E) bool) Iterator[E] {
	return &filterIterator[E]{input: it, keep: keep}
}

type mapIterator[E, R any] struct {
	input   Iterator[E]
	handler func(E) R
	closed  bool
}

func (it *mapIterator[E, R]) Next() (R, bool) {
	if !it.closed {
		if e, ok := it.input.Next(); ok {
			return it.handler(e), true
		}
		it.closed = true
	}
	var zero R
	return zero, false
}

func Map[E, R any](it Iterator[E], handler func(E) R) Iterator[R] {
	return &mapIterator[E, R]{input: it, handler: handler}
}

// TryMap applies a fallible transform. Every element produces a sum:
// Right for a transformed value, Left for the error it failed with.
// Nothing is skipped; the caller decides what failures mean, typically
// with Divide or sum.Partition.
func TryMap[E, R any](it Iterator[E], handler func(E) (R, error)) Iterator[sum.Sum[error, R]] {
	return Map(it, func(e E) sum.Sum[error, R] {
		return sum.FromError(handler(e))
	})
}

func Collect[E any](it Iterator[E]) []E {
	s := make([]E, 0)
	for e := range Iter(it) {
		s = append(s, e)
	}
	return s
}

func Reduce[E, R any](it Iterator[E], handler func(R, E) R, initial R) R {
	for e := range Iter(it) {
		initial = handler(initial, e)
	}
	return initial
}

func Group[K comparable, E, R any](it Iterator[E], extract func(E) (K, R)) map[K][]R {
	m := make(map[K][]R)
	for e := range Iter(it) {
		k, r := extract(e)
		m[k] = append(m[k], r)
	}
	return m
}

// Head consumes at most one element.
func Head[E any](it Iterator[E]) maybe.Maybe[E] {
	if e, ok := it.Next(); ok {
		return maybe.Just(e)
	}
	return maybe.None[E]()
}

// Find consumes elements until the predicate matches.
func Find[E any](it Iterator[E], pred func(E) bool) maybe.Maybe[E] {
	return Head(Filter(it, pred))
}

// Divide drains an iterator of sums, routing each payload to its side.
func Divide[A, B any](it Iterator[sum.Sum[A, B]]) ([]A, []B) {
	return sum.Partition(Collect(it))
}
