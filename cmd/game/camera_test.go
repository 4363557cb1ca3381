package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestCameraFollowClampsToMap(t *testing.T) {
	c := NewCamera(200, 100)
	c.SetBounds(1000, 500)

	c.Follow(cp.Vector{X: 500, Y: 250})
	assert.Equal(t, cp.Vector{X: 400, Y: 200}, c.Offset())

	c.Follow(cp.Vector{X: 10, Y: 10})
	assert.Equal(t, cp.Vector{}, c.Offset())

	c.Follow(cp.Vector{X: 990, Y: 490})
	assert.Equal(t, cp.Vector{X: 800, Y: 400}, c.Offset())
}

func TestCameraCentresSmallMap(t *testing.T) {
	c := NewCamera(200, 100)
	c.SetBounds(100, 50)
	c.Follow(cp.Vector{X: 90, Y: 40})
	assert.Equal(t, cp.Vector{X: -50, Y: -25}, c.Offset())
}

func TestCameraShakeDecays(t *testing.T) {
	c := NewCamera(200, 100)
	c.SetBounds(1000, 500)
	c.Follow(cp.Vector{X: 500, Y: 250})

	c.Shake()
	c.Update(0.1)
	off := c.Offset().Sub(cp.Vector{X: 400, Y: 200})
	assert.LessOrEqual(t, off.Length(), shakeStrength*1.5)

	for i := 0; i < 10; i++ {
		c.Update(0.1)
	}
	assert.Equal(t, cp.Vector{X: 400, Y: 200}, c.Offset())

	x, y := c.ToScreen(cp.Vector{X: 410, Y: 220})
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(20), y)
}
