package grid

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/pkg/core"
	"tapestry/pkg/patterns"
	"tapestry/pkg/selection"
)

func numbered(w, h int) *Grid[int] {
	return NewWithGenerator(core.RectOf(w, h), func(c core.Coord) int { return c.Y*10 + c.X })
}

func TestNewWithGeneratorRowMajor(t *testing.T) {
	g := numbered(3, 2)
	assert.Equal(t, []int{0, 1, 2, 10, 11, 12}, g.Values())
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 4, g.Index(core.C(1, 1)))
	assert.Equal(t, -1, g.Index(core.C(3, 0)))

	var order []core.Coord
	for c, v := range g.All() {
		order = append(order, c)
		assert.Equal(t, c.Y*10+c.X, v)
	}
	assert.Equal(t, slices.Collect(patterns.Rect(g.Bounds())), order)
}

func TestOffsetBounds(t *testing.T) {
	r := core.Rect{Min: core.C(-2, -2), Max: core.C(0, 0)}
	g := NewWithGenerator(r, func(c core.Coord) core.Coord { return c })
	v, err := g.Get(core.C(-1, -2))
	require.NoError(t, err)
	assert.Equal(t, core.C(-1, -2), v)
	_, err = g.Get(core.C(0, 0))
	assert.ErrorIs(t, err, selection.ErrOutOfBounds)
}

func TestGetSetBounds(t *testing.T) {
	g := New[string](core.RectOf(2, 2))
	require.NoError(t, g.Set(core.C(1, 0), "x"))
	v, err := g.Get(core.C(1, 0))
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	err = g.Set(core.C(2, 0), "y")
	require.Error(t, err)
	var be *selection.BoundsError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, core.C(2, 0), be.Coord)

	p, err := g.GetMut(core.C(0, 1))
	require.NoError(t, err)
	*p = "z"
	assert.Equal(t, []string{"", "x", "z", ""}, g.Values())

	_, err = g.GetMut(core.C(-1, -1))
	assert.ErrorIs(t, err, selection.ErrOutOfBounds)
}

func TestSelectNeighborhoodAtCorner(t *testing.T) {
	g := numbered(3, 3)
	var values []int
	failures := 0
	for cell, err := range g.Select(patterns.Neighborhood(core.C(0, 0))) {
		if err != nil {
			failures++
			continue
		}
		values = append(values, cell.Value)
	}
	assert.Equal(t, 5, failures)
	assert.Equal(t, []int{10, 11, 1}, values)
}

func TestSelectMutOverLine(t *testing.T) {
	g := New[int](core.RectOf(4, 4))
	for ref, err := range g.SelectMut(patterns.Line(core.C(0, 0), core.C(3, 1))) {
		require.NoError(t, err)
		*ref.Value = 1
	}
	want := []int{
		1, 1, 0, 0,
		0, 0, 1, 1,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	if diff := cmp.Diff(want, g.Values()); diff != "" {
		t.Fatalf("line write mismatch (-want +got):\n%s", diff)
	}
}

func TestAllMutAndFill(t *testing.T) {
	g := numbered(2, 2)
	for c, p := range g.AllMut() {
		*p += c.X
	}
	assert.Equal(t, []int{0, 2, 10, 12}, g.Values())
	g.Fill(7)
	assert.Equal(t, []int{7, 7, 7, 7}, g.Values())
}

func TestMap(t *testing.T) {
	g := numbered(2, 2)
	s := Map(g, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, g.Bounds(), s.Bounds())
	assert.Equal(t, []bool{true, false, true, false}, s.Values())
}

func TestUpdateSeesPreviousGeneration(t *testing.T) {
	// Every cell takes the value of its west neighbor. Updating in place
	// would smear cell 0 across the whole row.
	g := NewWithGenerator(core.RectOf(4, 1), func(c core.Coord) int { return c.X + 1 })
	shift := func(c core.Coord, _ int) int {
		for cell, err := range g.Select(patterns.Torus(g.Bounds(), slices.Values([]core.Coord{c.Add(core.West)}))) {
			require.NoError(t, err)
			return cell.Value
		}
		return -1
	}

	g.Update(shift)
	assert.Equal(t, []int{4, 1, 2, 3}, g.Values())
	g.Update(shift)
	assert.Equal(t, []int{3, 4, 1, 2}, g.Values())
	assert.Zero(t, g.Guard().Readers())
	assert.False(t, g.Guard().Writing())
}

func TestMutationDuringReadPanics(t *testing.T) {
	g := numbered(3, 3)
	assert.Panics(t, func() {
		for range g.Select(patterns.Neighborhood(core.C(1, 1))) {
			g.Fill(0)
		}
	})
	assert.Panics(t, func() {
		for range g.AllMut() {
			_, _ = g.Get(core.C(0, 0))
		}
	})
	assert.Panics(t, func() {
		g.Update(func(c core.Coord, v int) int {
			_ = g.Set(c, v)
			return v
		})
	})
	assert.Zero(t, g.Guard().Readers())
	assert.False(t, g.Guard().Writing())
	assert.Equal(t, numbered(3, 3).Values(), g.Values(), "failed scans leave the grid untouched")
}

func TestWrap(t *testing.T) {
	g := New[int](core.RectOf(5, 5))
	assert.Equal(t, core.C(4, 0), g.Wrap(core.C(-1, 5)))
}
