package life

import (
	"tapestry/pkg/core"
	"tapestry/pkg/grid"
	"tapestry/pkg/patterns"
	"tapestry/pkg/selection"
)

// State is the value of a single Life cell.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

func isAlive(s State) bool { return s == Alive }

// Life implements Conway's Game of Life.
type Life struct {
	cfg     Config
	grid    *grid.Grid[State]
	display []uint8
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from the provided options.
func NewWithConfig(cfg Config) *Life {
	g := grid.New[State](core.RectOf(cfg.Width, cfg.Height))
	return &Life{cfg: cfg, grid: g, display: make([]uint8, g.Len())}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	b := l.grid.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Grid exposes the board.
func (l *Life) Grid() *grid.Grid[State] { return l.grid }

// Cells exposes the current grid values as 0/1.
func (l *Life) Cells() []uint8 {
	for i, s := range l.grid.Values() {
		l.display[i] = uint8(s)
	}
	return l.display
}

// Reset randomizes the board using the provided seed. Each cell starts alive
// with probability Config.Density.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for _, cell := range l.grid.AllMut() {
		*cell = Dead
		if rng.Chance(l.cfg.Density) {
			*cell = Alive
		}
	}
}

// LiveNeighbors counts the live cells in the Moore neighborhood of c. Off-grid
// neighbors count as dead unless the board wraps.
func (l *Life) LiveNeighbors(c core.Coord) int {
	pattern := patterns.Neighborhood(c)
	if l.cfg.Wrap {
		pattern = patterns.Torus(l.grid.Bounds(), pattern)
	}
	return selection.CountMatching(l.grid.Select(pattern), isAlive)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid.Update(func(c core.Coord, s State) State {
		return Next(s, l.LiveNeighbors(c))
	})
}

// Next applies the B3/S23 rule.
func Next(s State, neighbors int) State {
	switch {
	case s == Alive && (neighbors == 2 || neighbors == 3):
		return Alive
	case s == Dead && neighbors == 3:
		return Alive
	}
	return Dead
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
