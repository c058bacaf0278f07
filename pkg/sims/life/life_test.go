package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/pkg/core"
	"tapestry/pkg/selection"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	g := life.Grid()
	g.Fill(Dead)

	set := func(x, y int) {
		if err := g.Set(core.C(x, y), Alive); err != nil {
			t.Fatalf("set (%d,%d): %v", x, y, err)
		}
	}
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life.Step()

	expects := map[core.Coord]bool{
		core.C(1, 2): true,
		core.C(2, 2): true,
		core.C(3, 2): true,
	}
	for c, s := range g.All() {
		alive := s == Alive
		if expects[c] != alive {
			t.Fatalf("cell %v alive=%v, expected %v", c, alive, expects[c])
		}
	}

	life.Step()

	expects = map[core.Coord]bool{
		core.C(2, 1): true,
		core.C(2, 2): true,
		core.C(2, 3): true,
	}
	for c, s := range g.All() {
		alive := s == Alive
		if expects[c] != alive {
			t.Fatalf("after second step cell %v alive=%v, expected %v", c, alive, expects[c])
		}
	}
}

func TestLiveNeighborsAroundLoneCell(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Wrap = 3, 3, false
	life := NewWithConfig(cfg)
	center := core.C(1, 1)
	require.NoError(t, life.Grid().Set(center, Alive))

	assert.Equal(t, 0, life.LiveNeighbors(center))
	for _, edge := range []core.Coord{core.C(1, 2), core.C(2, 1), core.C(1, 0), core.C(0, 1)} {
		assert.Equal(t, 1, life.LiveNeighbors(edge), "edge cell %v", edge)
	}
	for _, corner := range []core.Coord{core.C(0, 0), core.C(2, 0), core.C(0, 2), core.C(2, 2)} {
		assert.Equal(t, 1, life.LiveNeighbors(corner), "corner cell %v", corner)
	}
}

func TestLiveNeighborsWrapsOnTorus(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 4, 4

	for _, wrap := range []bool{false, true} {
		cfg.Wrap = wrap
		life := NewWithConfig(cfg)
		require.NoError(t, life.Grid().Set(core.C(3, 3), Alive))

		want := 0
		if wrap {
			want = 1
		}
		assert.Equal(t, want, life.LiveNeighbors(core.C(0, 0)), "wrap=%v", wrap)
	}
}

// The rule must see the previous generation everywhere. A block of three
// horizontally adjacent cells only turns vertical if no cell observes a
// neighbor that was already rewritten in the same step.
func TestStepReadsPreviousGeneration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Wrap = 3, 3, false
	life := NewWithConfig(cfg)
	g := life.Grid()
	for x := 0; x < 3; x++ {
		require.NoError(t, g.Set(core.C(x, 1), Alive))
	}

	prevState := make(map[core.Coord]State)
	prevCount := make(map[core.Coord]int)
	for c, s := range g.All() {
		prevState[c] = s
		prevCount[c] = life.LiveNeighbors(c)
	}

	life.Step()

	for c, s := range g.All() {
		assert.Equal(t, Next(prevState[c], prevCount[c]), s, "cell %v", c)
	}
	got := []State{}
	for x := 0; x < 3; x++ {
		s, err := g.Get(core.C(x, 1))
		require.NoError(t, err)
		got = append(got, s)
	}
	assert.Equal(t, []State{Dead, Alive, Dead}, got)
	top, err := g.Get(core.C(1, 2))
	require.NoError(t, err)
	assert.Equal(t, Alive, top)
}

func TestWritingDuringNeighborScanPanics(t *testing.T) {
	life := New(3, 3)
	g := life.Grid()

	assert.PanicsWithError(t, (&selection.AccessError{Requested: selection.Write, Readers: 1}).Error(), func() {
		for c := range g.All() {
			_ = g.Set(c, Alive)
		}
	})
	assert.Zero(t, g.Guard().Readers(), "read borrow released after panic")
}

func TestResetDeterministic(t *testing.T) {
	a := New(16, 16)
	b := New(16, 16)
	a.Reset(7)
	b.Reset(7)
	assert.Equal(t, a.Cells(), b.Cells())

	alive := 0
	for _, v := range a.Cells() {
		alive += int(v)
	}
	assert.Positive(t, alive)
	assert.Less(t, alive, 16*16)
}

func TestNextRule(t *testing.T) {
	cases := []struct {
		state     State
		neighbors int
		want      State
	}{
		{Alive, 1, Dead},
		{Alive, 2, Alive},
		{Alive, 3, Alive},
		{Alive, 4, Dead},
		{Dead, 2, Dead},
		{Dead, 3, Alive},
		{Dead, 4, Dead},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Next(tc.state, tc.neighbors), "%v with %d", tc.state, tc.neighbors)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "h": "x", "density": "0.5", "wrap": "false"})
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.InDelta(t, 0.5, c.Density, 1e-9)
	assert.False(t, c.Wrap)

	c = FromMap(map[string]string{"density": "1.5"})
	assert.InDelta(t, DefaultConfig().Density, c.Density, 1e-9)
}
