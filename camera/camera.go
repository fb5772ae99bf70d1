// Package camera offsets the viewport, used to shake the river scene when a
// crocodile bites.
package camera

import "math"

// Shake oscillation frequencies in radians per millisecond.
const (
	freqX = 0.09
	freqY = 0.13
)

// Camera maps scene coordinates to the screen with an optional decaying
// shake offset.
type Camera struct {
	amplitude  float32
	durationMs int64
	startMs    int64
}

// New creates a camera at rest.
func New() *Camera {
	return &Camera{}
}

// Shake starts a shake at now. A stronger shake replaces a weaker one still
// running.
func (c *Camera) Shake(now int64, amplitude float32, durationMs int64) {
	if durationMs <= 0 || amplitude <= 0 {
		return
	}
	if c.Active(now) && c.strength(now) > amplitude {
		return
	}
	c.amplitude = amplitude
	c.durationMs = durationMs
	c.startMs = now
}

// Active reports whether a shake is running at now.
func (c *Camera) Active(now int64) bool {
	return c.durationMs > 0 && now >= c.startMs && now-c.startMs < c.durationMs
}

// strength is the amplitude decayed linearly over the shake duration.
func (c *Camera) strength(now int64) float32 {
	if !c.Active(now) {
		return 0
	}
	left := 1 - float32(now-c.startMs)/float32(c.durationMs)
	return c.amplitude * left
}

// Offset returns the screen displacement at now. Both components stay
// within the decayed amplitude.
func (c *Camera) Offset(now int64) (dx, dy float32) {
	s := c.strength(now)
	if s == 0 {
		return 0, 0
	}
	t := float64(now - c.startMs)
	dx = s * float32(math.Sin(t*freqX))
	dy = s * float32(math.Cos(t*freqY))
	return dx, dy
}

// WorldToScreen converts scene coordinates to screen coordinates at now.
func (c *Camera) WorldToScreen(wx, wy float32, now int64) (sx, sy float32) {
	dx, dy := c.Offset(now)
	return wx + dx, wy + dy
}

// Reset stops any running shake.
func (c *Camera) Reset() {
	c.amplitude = 0
	c.durationMs = 0
	c.startMs = 0
}
