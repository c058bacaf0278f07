package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tapestry/pkg/core"
)

func TestInspectorMaskClipsAtEdges(t *testing.T) {
	in := &Inspector{Mode: PatternMoore}
	in.Hover(core.C(0, 0))

	mask, clipped := in.Mask(core.Size{W: 3, H: 3})
	assert.Equal(t, 5, clipped)
	assert.Equal(t, []uint8{
		0, 1, 0,
		1, 1, 0,
		0, 0, 0,
	}, mask.Values())
}

func TestInspectorLineUnderNeighborhood(t *testing.T) {
	in := &Inspector{Mode: PatternOrtho}
	in.Anchor(core.C(0, 0))
	in.Hover(core.C(3, 1))

	mask, clipped := in.Mask(core.Size{W: 4, H: 3})
	assert.Equal(t, 1, clipped)
	assert.Equal(t, []uint8{
		2, 2, 0, 1,
		0, 0, 1, 2,
		0, 0, 0, 1,
	}, mask.Values())

	in.ClearAnchor()
	in.Mode = PatternNone
	mask, clipped = in.Mask(core.Size{W: 4, H: 3})
	assert.Zero(t, clipped)
	assert.Equal(t, make([]uint8, 12), mask.Values())
	assert.Equal(t, "none", in.Mode.String())
}
