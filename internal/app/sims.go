package app

import (
	"fmt"
	"strings"

	"tapestry/pkg/core"
	// Registered simulations.
	_ "tapestry/pkg/sims/briansbrain"
	_ "tapestry/pkg/sims/elementary"
	_ "tapestry/pkg/sims/life"
)

// NewSim builds and resets the sim named by cfg.
func NewSim(cfg *Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}
	sim := factory(cfg.Params)
	sim.Reset(cfg.Seed)
	return sim, nil
}
