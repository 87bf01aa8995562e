package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adinfit/glsteps/app"
)

func TestAdjust(t *testing.T) {
	assert.InDelta(t, 0.15, adjust(0.1, 0.05, 0, 1), 1e-6)
	assert.Equal(t, float32(1), adjust(0.98, 0.05, 0, 1))
	assert.Equal(t, float32(0.05), adjust(0.05, -0.05, 0.05, 1))
}

func TestDefaults(t *testing.T) {
	demo := NewPBR(app.DefaultConfig("test"))

	assert.Equal(t, StandardPBR, demo.current)
	assert.Equal(t, float32(0.05), demo.Material.Roughness)
	assert.True(t, demo.Material.BumpMap)
	assert.False(t, demo.Material.HasMetallicMap)
	assert.False(t, demo.Material.HasRoughnessMap)
	assert.Equal(t, Display{Gamma: 2.2, Exposure: 1}, demo.Display)
}
