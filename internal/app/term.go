package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tapestry/pkg/core"
)

const clearScreen = "\x1b[2J\x1b[1;1H"

// DefaultGlyphs renders 0 as a dot, 1 as '#', and higher states as '+'.
var DefaultGlyphs = []string{"∙", "#", "+"}

// Terminal draws a sim as text frames, one glyph per cell followed by a space.
type Terminal struct {
	sim    core.Sim
	out    io.Writer
	log    zerolog.Logger
	glyphs []string

	// Clear emits an ANSI clear-screen sequence before each frame.
	Clear bool

	buf strings.Builder
}

// NewTerminal constructs a Terminal writing frames to out.
func NewTerminal(sim core.Sim, out io.Writer, logger zerolog.Logger) *Terminal {
	return &Terminal{sim: sim, out: out, log: logger, glyphs: DefaultGlyphs, Clear: true}
}

// Frame writes the current sim state.
func (t *Terminal) Frame() error {
	size := t.sim.Size()
	cells := t.sim.Cells()
	if len(cells) != size.W*size.H {
		return fmt.Errorf("frame: %d cells for a %dx%d sim", len(cells), size.W, size.H)
	}

	t.buf.Reset()
	if t.Clear {
		t.buf.WriteString(clearScreen)
	}
	last := len(t.glyphs) - 1
	for y := 0; y < size.H; y++ {
		for _, v := range cells[y*size.W : (y+1)*size.W] {
			t.buf.WriteString(t.glyphs[min(int(v), last)])
			t.buf.WriteByte(' ')
		}
		t.buf.WriteByte('\n')
	}
	if _, err := io.WriteString(t.out, t.buf.String()); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	return nil
}

// Run draws a frame, then steps and redraws at the pace of fs until steps
// ticks have run (0 means forever) or ctx is done. Cancellation is not an
// error.
func (t *Terminal) Run(ctx context.Context, steps int, fs *FixedStep) error {
	if err := t.Frame(); err != nil {
		return err
	}
	start := time.Now()
	ticks := 0
	timer := time.NewTimer(0)
	defer timer.Stop()

	for steps == 0 || ticks < steps {
		if fs.ShouldStep() {
			t.sim.Step()
			ticks++
			if err := t.Frame(); err != nil {
				return err
			}
			t.log.Debug().Int("tick", ticks).Msg("stepped")
			continue
		}
		timer.Reset(fs.Until())
		select {
		case <-ctx.Done():
			t.log.Info().Int("ticks", ticks).Dur("elapsed", time.Since(start)).Msg("interrupted")
			return nil
		case <-timer.C:
		}
	}
	t.log.Info().Int("ticks", ticks).Dur("elapsed", time.Since(start)).Msg("finished")
	return nil
}
