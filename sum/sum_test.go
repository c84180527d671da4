package sum

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldLeft(t *testing.T) {
	s := Left[int, string](1)
	assert.True(t, s.IsLeft())
	assert.False(t, s.IsRight())

	out := Fold(s,
		func(n int) string { return strconv.Itoa(n) },
		func(v string) string {
			t.Fatal("right handler must not run for a Left")
			return v
		},
	)
	assert.Equal(t, "1", out)
}

func TestFoldRight(t *testing.T) {
	s := Right[int]("hello")
	assert.True(t, s.IsRight())

	out := Fold(s,
		func(int) int {
			t.Fatal("left handler must not run for a Right")
			return 0
		},
		func(v string) int { return len(v) },
	)
	assert.Equal(t, 5, out)
}

func TestMapLeftAndRight(t *testing.T) {
	l := Left[int, string](21)
	assert.Equal(t, Left[int, string](42), MapLeft(l, func(n int) int { return n * 2 }))
	assert.Equal(t, l, MapRight(l, func(s string) string { return s + "!" }))

	r := Right[int]("go")
	assert.Equal(t, r, MapLeft(r, func(n int) int { return n * 2 }))
	assert.Equal(t, Right[int]("go!"), MapRight(r, func(s string) string { return s + "!" }))
}

func TestSwap(t *testing.T) {
	assert.Equal(t, Right[string](1), Swap(Left[int, string](1)))
	assert.Equal(t, Left[string, int]("x"), Swap(Right[int]("x")))
}

func TestPartition(t *testing.T) {
	ss := []Sum[int, string]{
		Left[int, string](1),
		Right[int]("a"),
		Left[int, string](2),
		Right[int]("b"),
	}
	ls, rs := Partition(ss)
	assert.Equal(t, []int{1, 2}, ls)
	assert.Equal(t, []string{"a", "b"}, rs)

	ls, rs = Partition([]Sum[int, string]{})
	assert.Empty(t, ls)
	assert.Empty(t, rs)
}

func TestFromError(t *testing.T) {
	ok := FromError(7, nil)
	assert.True(t, ok.IsRight())
	assert.Equal(t, 7, Fold(ok, func(error) int { return -1 }, func(n int) int { return n }))

	boom := errors.New("boom")
	bad := FromError(0, boom)
	assert.True(t, bad.IsLeft())
	assert.Equal(t, boom, Fold(bad, func(err error) error { return err }, func(int) error { return nil }))
}
