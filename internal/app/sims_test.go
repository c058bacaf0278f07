package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tapestry/pkg/core"
)

func TestNewSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "life"
	cfg.Params = map[string]string{"w": "20", "h": "10"}

	sim, err := NewSim(cfg)
	require.NoError(t, err)
	assert.Equal(t, "life", sim.Name())
	assert.Equal(t, core.Size{W: 20, H: 10}, sim.Size())

	cfg.Sim = "nope"
	_, err = NewSim(cfg)
	assert.ErrorContains(t, err, `unknown sim "nope"`)
	assert.ErrorContains(t, err, "briansbrain, elementary, life")
}
