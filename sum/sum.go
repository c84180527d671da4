// Package sum provides a binary tagged union: every value is either a
// Left carrying an A or a Right carrying a B, decided at construction
// and never changed. The only way to reach a payload is Fold, so a
// caller must handle both variants before it can touch either value.
//
// The arity is fixed at two. Wider unions would need one constructor
// per variant and a wider Fold; nothing here depends on two beyond the
// field pair.
package sum

type Sum[A, B any] struct {
	left    A
	right   B
	isRight bool
}

func Left[A, B any](v A) Sum[A, B] {
	return Sum[A, B]{left: v}
}

func Right[A, B any](v B) Sum[A, B] {
	return Sum[A, B]{right: v, isRight: true}
}

func (s Sum[A, B]) IsLeft() bool {
	return !s.isRight
}

func (s Sum[A, B]) IsRight() bool {
	return s.isRight
}

// Fold invokes exactly the handler matching the active variant and
// returns its result.
func Fold[A, B, R any](s Sum[A, B], left func(A) R, right func(B) R) R {
	if s.isRight {
		return right(s.right)
	}
	return left(s.left)
}

func MapLeft[A, B, R any](s Sum[A, B], f func(A) R) Sum[R, B] {
	if s.isRight {
		return Right[R](s.right)
	}
	return Left[R, B](f(s.left))
}

func MapRight[A, B, R any](s Sum[A, B], f func(B) R) Sum[A, R] {
	if s.isRight {
		return Right[A](f(s.right))
	}
	return Left[A, R](s.left)
}

func Swap[A, B any](s Sum[A, B]) Sum[B, A] {
	if s.isRight {
		return Left[B, A](s.right)
	}
	return Right[B](s.left)
}

// Partition routes the payloads of a slice of sums into two slices,
// preserving relative order within each side.
func Partition[A, B any](ss []Sum[A, B]) ([]A, []B) {
	lefts := make([]A, 0)
	rights := make([]B, 0)
	for _, s := range ss {
		if s.isRight {
			rights = append(rights, s.right)
		} else {
			lefts = append(lefts, s.left)
		}
	}
	return lefts, rights
}

// FromError adapts Go's (value, error) convention: a non-nil error
// becomes the Left, otherwise the value becomes the Right.
func FromError[T any](v T, err error) Sum[error, T] {
	if err != nil {
		return Left[error, T](err)
	}
	return Right[error](v)
}
