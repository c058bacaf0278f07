package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"tapestry/internal/app"
	"tapestry/internal/logging"
)

func main() {
	logger := logging.New("ca-term")

	fs := flag.NewFlagSet("ca-term", flag.ExitOnError)
	cfg, err := app.Parse(fs, os.Args[1:])
	if err != nil {
		logger.Fatal().Err(err).Msg("parse config")
	}
	if _, ok := cfg.Params["w"]; !ok {
		cfg.Params["w"] = "16"
	}
	if _, ok := cfg.Params["h"]; !ok {
		cfg.Params["h"] = "16"
	}

	sim, err := app.NewSim(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("create sim")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("sim", sim.Name()).Int64("seed", cfg.Seed).Int("tps", cfg.TPS).Msg("starting")
	term := app.NewTerminal(sim, os.Stdout, logger)
	if err := term.Run(ctx, cfg.Steps, app.NewFixedStep(cfg.TPS)); err != nil {
		logger.Fatal().Err(err).Msg("run")
	}
}
