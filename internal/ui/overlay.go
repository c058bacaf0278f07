//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"tapestry/pkg/core"
	"tapestry/pkg/patterns"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the pattern inspector on top of the base simulation.
type Overlay struct {
	sim       core.Sim
	scale     int
	inspector Inspector
	showInfo  bool
	clipped   int

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showInfo: true}
	o.inspector.Mode = PatternMoore
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		o.inspector.Mode = PatternNone
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.inspector.Mode = PatternMoore
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.inspector.Mode = PatternOrtho
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.inspector.Mode = PatternDiag
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if o.inspector.Rule == patterns.FaultStrict {
			o.inspector.Rule = patterns.FaultInclusive
		} else {
			o.inspector.Rule = patterns.FaultStrict
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showInfo = !o.showInfo
	}

	scale := max(o.scale, 1)
	mx, my := ebiten.CursorPosition()
	hover := core.C(mx/scale, my/scale)
	o.inspector.Hover(hover)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		o.inspector.Anchor(hover)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		o.inspector.ClearAnchor()
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := max(o.scale, 1)

	mask, clipped := o.inspector.Mask(size)
	o.clipped = clipped
	for c, v := range mask.All() {
		switch v {
		case MaskNeighbor:
			o.drawCell(screen, c, scale, color.RGBA{R: 64, G: 164, B: 223, A: 160})
		case MaskLine:
			o.drawCell(screen, c, scale, color.RGBA{R: 255, G: 120, B: 40, A: 160})
		}
	}

	if o.showInfo {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("pattern=%v rule=%v clipped=%d",
			o.inspector.Mode, o.inspector.Rule, o.clipped))
	}
}

func (o *Overlay) drawCell(screen *ebiten.Image, c core.Coord, scale int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(c.X*scale), float64(c.Y*scale))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
