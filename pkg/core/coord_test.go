package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordArithmetic(t *testing.T) {
	a := C(3, -2)
	b := C(-1, 5)

	assert.Equal(t, C(2, 3), a.Add(b))
	assert.Equal(t, C(4, -7), a.Sub(b))
	assert.Equal(t, C(-3, 2), a.Neg())
	assert.Equal(t, C(9, -6), a.Scale(3))
	assert.Equal(t, C(1, -1), a.Sign())
	assert.Equal(t, C(0, 0), C(0, 0).Sign())
	assert.Equal(t, C(3, 2), a.Abs())
	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, C(3, -2), a, "operators return new values")
}

func TestCoordDistances(t *testing.T) {
	assert.Equal(t, 7, C(3, -2).Chebyshev(C(-1, 5)))
	assert.Equal(t, 11, C(3, -2).Manhattan(C(-1, 5)))
	for _, d := range []Coord{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest} {
		assert.Equal(t, 1, C(0, 0).Chebyshev(d), "offset %v", d)
	}
}

func TestFromConvertsIntegerPairs(t *testing.T) {
	assert.Equal(t, C(4, 5), From(int8(4), int8(5)))
	assert.Equal(t, C(-4, 9), From(int64(-4), int64(9)))
	assert.Equal(t, C(7, 1), FromPair([2]uint16{7, 1}))
	assert.Equal(t, [2]int{7, 1}, C(7, 1).Pair())
	assert.Equal(t, "(7, -1)", C(7, -1).String())
}

func TestCoordOverflowWraps(t *testing.T) {
	c := C(math.MaxInt, 0).Add(East)
	assert.Equal(t, math.MinInt, c.X)
}

func TestRect(t *testing.T) {
	r := RectOf(4, 3)
	assert.Equal(t, 4, r.Dx())
	assert.Equal(t, 3, r.Dy())
	assert.Equal(t, 12, r.Len())
	assert.False(t, r.Empty())
	assert.True(t, r.Contains(C(0, 0)))
	assert.True(t, r.Contains(C(3, 2)))
	assert.False(t, r.Contains(C(4, 2)))
	assert.False(t, r.Contains(C(-1, 0)))

	assert.True(t, RectOf(-2, 3).Empty())
	assert.Equal(t, 0, RectOf(-2, 3).Len())
}

func TestRectWrap(t *testing.T) {
	r := RectOf(4, 3)
	assert.Equal(t, C(3, 2), r.Wrap(C(-1, -1)))
	assert.Equal(t, C(0, 0), r.Wrap(C(4, 3)))
	assert.Equal(t, C(1, 1), r.Wrap(C(9, -5)))

	offset := Rect{Min: C(10, 10), Max: C(12, 12)}
	assert.Equal(t, C(11, 10), offset.Wrap(C(9, 12)))

	assert.Equal(t, C(5, 5), Rect{}.Wrap(C(5, 5)))
}
