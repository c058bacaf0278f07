package ui

import (
	"iter"

	"tapestry/pkg/core"
	"tapestry/pkg/grid"
	"tapestry/pkg/patterns"
)

// PatternMode selects which neighborhood the inspector highlights around the
// hovered cell.
type PatternMode uint8

const (
	PatternNone PatternMode = iota
	PatternMoore
	PatternOrtho
	PatternDiag
)

func (m PatternMode) String() string {
	switch m {
	case PatternMoore:
		return "moore"
	case PatternOrtho:
		return "ortho"
	case PatternDiag:
		return "diag"
	default:
		return "none"
	}
}

// Inspector tracks the hovered cell and an optional line anchor and turns
// them into a highlight mask over the sim grid.
type Inspector struct {
	Mode PatternMode
	Rule patterns.FaultRule

	hover     core.Coord
	anchor    core.Coord
	anchorSet bool

	mask *grid.Grid[uint8]
}

// Mask values.
const (
	MaskNone uint8 = iota
	MaskNeighbor
	MaskLine
)

// Hover moves the inspected cell.
func (in *Inspector) Hover(c core.Coord) { in.hover = c }

// Anchor fixes the start of the traced line at c.
func (in *Inspector) Anchor(c core.Coord) {
	in.anchor = c
	in.anchorSet = true
}

// ClearAnchor removes the traced line.
func (in *Inspector) ClearAnchor() { in.anchorSet = false }

func (in *Inspector) neighborhood() iter.Seq[core.Coord] {
	switch in.Mode {
	case PatternMoore:
		return patterns.Neighborhood(in.hover)
	case PatternOrtho:
		return patterns.OrthoNeighborhood(in.hover)
	case PatternDiag:
		return patterns.DiagNeighborhood(in.hover)
	}
	return nil
}

// Mask rebuilds the highlight mask for a grid of the given size and returns
// it along with the number of highlighted cells that fell off the grid.
func (in *Inspector) Mask(size core.Size) (*grid.Grid[uint8], int) {
	bounds := size.Rect()
	if in.mask == nil || in.mask.Bounds() != bounds {
		in.mask = grid.New[uint8](bounds)
	}
	in.mask.Fill(MaskNone)

	clipped := 0
	paint := func(seq iter.Seq[core.Coord], v uint8) {
		if seq == nil {
			return
		}
		for ref, err := range in.mask.SelectMut(seq) {
			if err != nil {
				clipped++
				continue
			}
			*ref.Value = v
		}
	}
	if in.anchorSet {
		paint(patterns.LineWith(in.anchor, in.hover, in.Rule), MaskLine)
	}
	paint(in.neighborhood(), MaskNeighbor)
	return in.mask, clipped
}
