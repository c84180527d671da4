package lasuma

import "golang.org/x/exp/constraints"

// Pair is a two-slot product type. Both slots are fixed at construction
// and cannot be replaced afterwards.
type Pair[A, B any] struct {
	one A
	two B
}

func MakePair[A, B any](one A, two B) Pair[A, B] {
	return Pair[A, B]{one: one, two: two}
}

func (p Pair[A, B]) One() A {
	return p.one
}

func (p Pair[A, B]) Two() B {
	return p.two
}

// Split returns both slots at once, for use with multi-assignment.
func (p Pair[A, B]) Split() (A, B) {
	return p.one, p.two
}

// PairsEqual reports structural equality: both slots must compare equal.
func PairsEqual[A, B comparable](p, q Pair[A, B]) bool {
	return p.one == q.one && p.two == q.two
}

// ComparePairs orders pairs lexicographically, first slot before second.
// The result follows the usual -1/0/+1 convention.
func ComparePairs[A, B constraints.Ordered](p, q Pair[A, B]) int {
	switch {
	case p.one < q.one:
		return -1
	case p.one > q.one:
		return 1
	case p.two < q.two:
		return -1
	case p.two > q.two:
		return 1
	}
	return 0
}

// Zip pairs up two slices element-wise. The result is as long as the
// shorter input.
func Zip[A, B any](as []A, bs []B) []Pair[A, B] {
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	ps := make([]Pair[A, B], n)
	for i := 0; i < n; i++ {
		ps[i] = MakePair(as[i], bs[i])
	}
	return ps
}

// Unzip is the inverse of Zip over equal-length inputs.
func Unzip[A, B any](ps []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(ps))
	bs := make([]B, len(ps))
	for i, p := range ps {
		as[i] = p.one
		bs[i] = p.two
	}
	return as, bs
}
