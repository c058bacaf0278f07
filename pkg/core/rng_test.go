package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.IntN(100), b.IntN(100))
	}
}

func TestRNGChanceSaturates(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 16; i++ {
		assert.False(t, r.Chance(0))
		assert.False(t, r.Chance(-1))
		assert.True(t, r.Chance(1))
		assert.True(t, r.Chance(2))
	}
	assert.Zero(t, r.IntN(0))
}
