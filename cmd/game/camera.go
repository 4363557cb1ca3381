package main

import (
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/topdown/common"
)

const (
	shakeDuration = 0.3
	shakeStrength = 6.0
)

// Camera centres the view on a target, kept inside the map, with a decaying
// screen shake on top.
type Camera struct {
	viewW, viewH float64
	mapW, mapH   float64

	pos   cp.Vector
	shake cp.Vector

	shakeTimer float64
}

func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{viewW: viewW, viewH: viewH}
}

func (c *Camera) SetBounds(w, h float64) {
	c.mapW, c.mapH = w, h
}

// Follow moves the view so target sits in the centre, clamped to the map.
// A map smaller than the view is centred.
func (c *Camera) Follow(target cp.Vector) {
	c.pos.X = followAxis(target.X, c.viewW, c.mapW)
	c.pos.Y = followAxis(target.Y, c.viewH, c.mapH)
}

func followAxis(target, view, world float64) float64 {
	if world <= view {
		return (world - view) / 2
	}
	return common.Clamp(target-view/2, 0, world-view)
}

func (c *Camera) Shake() {
	c.shakeTimer = shakeDuration
}

func (c *Camera) Update(dt float64) {
	c.shake = cp.Vector{}
	if c.shakeTimer <= 0 {
		return
	}
	c.shakeTimer -= dt
	intensity := c.shakeTimer / shakeDuration * shakeStrength
	c.shake.X = (rand.Float64()*2 - 1) * intensity
	c.shake.Y = (rand.Float64()*2 - 1) * intensity
}

// Offset is the world position of the screen's top-left corner.
func (c *Camera) Offset() cp.Vector {
	return c.pos.Add(c.shake)
}

// ToScreen converts a world position to screen coordinates.
func (c *Camera) ToScreen(p cp.Vector) (float32, float32) {
	o := c.Offset()
	return float32(p.X - o.X), float32(p.Y - o.Y)
}
