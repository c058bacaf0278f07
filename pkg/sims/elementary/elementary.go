package elementary

import (
	"strconv"

	"tapestry/pkg/core"
	"tapestry/pkg/grid"
	"tapestry/pkg/patterns"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// Row 0 holds the newest generation; older rows scroll towards larger Y.
type Elementary struct {
	rule uint8
	grid *grid.Grid[uint8]
	row  core.Rect
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	return &Elementary{
		rule: rule,
		grid: grid.New[uint8](core.RectOf(w, h)),
		row:  core.RectOf(w, 1),
	}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size {
	b := e.grid.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Grid exposes the history buffer.
func (e *Elementary) Grid() *grid.Grid[uint8] { return e.grid }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Values() }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	e.grid.Fill(0)
	_ = e.grid.Set(core.C(e.row.Dx()/2, 0), 1)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	e.grid.Update(func(c core.Coord, _ uint8) uint8 {
		if c.Y > 0 {
			above, _ := e.grid.Get(c.Sub(core.C(0, 1)))
			return above
		}
		return e.next(c.X)
	})
}

// next looks up the new value of column x from its left, center and right
// cells in the current top row, wrapping at the edges.
func (e *Elementary) next(x int) uint8 {
	span := patterns.Torus(e.row, patterns.Line(core.C(x-1, 0), core.C(x+1, 0)))
	idx := uint8(0)
	for cell, err := range e.grid.Select(span) {
		if err != nil {
			continue
		}
		idx = idx<<1 | cell.Value&1
	}
	return (e.rule >> idx) & 1
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
