//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tapestry/internal/app"
	"tapestry/internal/logging"
)

func main() {
	logger := logging.New("ca")

	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("parse config")
	}

	sim, err := app.NewSim(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("create sim")
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, logger)
	size := sim.Size()

	ebiten.SetWindowTitle("tapestry — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	logger.Info().Str("sim", sim.Name()).Int("w", size.W).Int("h", size.H).Msg("starting")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("run game")
	}
}
