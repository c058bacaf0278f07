package briansbrain

import (
	"image/color"
	"strconv"

	"tapestry/pkg/core"
	"tapestry/pkg/grid"
	"tapestry/pkg/patterns"
	"tapestry/pkg/selection"
)

// State is the value of a Brian's Brain cell.
type State uint8

const (
	Dead State = iota
	On
	Dying
)

func isOn(s State) bool { return s == On }

// Brain implements Brian's Brain cellular automaton on a torus.
type Brain struct {
	grid    *grid.Grid[State]
	display []uint8

	// firing probability of each cell on Reset is 1/sparsity
	sparsity int
}

// New creates a Brain simulation with the provided dimensions.
func New(w, h int) *Brain {
	g := grid.New[State](core.RectOf(w, h))
	return &Brain{grid: g, display: make([]uint8, g.Len()), sparsity: 8}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size {
	r := b.grid.Bounds()
	return core.Size{W: r.Dx(), H: r.Dy()}
}

// Grid exposes the board.
func (b *Brain) Grid() *grid.Grid[State] { return b.grid }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 {
	for i, s := range b.grid.Values() {
		b.display[i] = uint8(s)
	}
	return b.display
}

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for _, cell := range b.grid.AllMut() {
		*cell = Dead
		if rng.IntN(b.sparsity) == 0 {
			*cell = On
		}
	}
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	bounds := b.grid.Bounds()
	b.grid.Update(func(c core.Coord, s State) State {
		switch s {
		case On:
			return Dying
		case Dying:
			return Dead
		}
		firing := selection.CountMatching(b.grid.Select(patterns.Torus(bounds, patterns.Neighborhood(c))), isOn)
		if firing == 2 {
			return On
		}
		return Dead
	})
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		w, h := 256, 256
		if v, err := strconv.Atoi(cfg["w"]); err == nil && v > 0 {
			w = v
		}
		if v, err := strconv.Atoi(cfg["h"]); err == nil && v > 0 {
			h = v
		}
		return New(w, h)
	})
}

var palette = []color.RGBA{
	Dead:  {A: 255},
	On:    {R: 255, G: 255, B: 255, A: 255},
	Dying: {R: 64, G: 96, B: 223, A: 255},
}

// Palette maps each state to its display color.
func (b *Brain) Palette() []color.RGBA { return palette }
