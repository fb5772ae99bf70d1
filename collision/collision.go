// Package collision provides bounding-box and pixel-accurate overlap tests.
//
// Sprites are tested in two stages: a cheap rectangle overlap rejects most
// pairs, then the opacity masks of the two sprites are intersected so that
// transparent padding around the artwork never counts as a hit.
package collision

import "math"

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal centre.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical centre.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether the two rectangles share any area.
// Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Body is a mask placed at a top-left screen position.
type Body struct {
	X, Y float64
	Mask *Mask
}

// Rect returns the bounding rectangle of the body.
func (b Body) Rect() Rect {
	if b.Mask == nil {
		return Rect{X: b.X, Y: b.Y}
	}
	return Rect{X: b.X, Y: b.Y, W: float64(b.Mask.w), H: float64(b.Mask.h)}
}

// Hit runs the bounding-box pre-filter and then the pixel test.
func Hit(a, b Body) bool {
	if a.Mask == nil || b.Mask == nil {
		return false
	}
	if !a.Rect().Overlaps(b.Rect()) {
		return false
	}
	return Overlap(a.Mask, pixel(a.X), pixel(a.Y), b.Mask, pixel(b.X), pixel(b.Y))
}

// Overlap reports whether any opaque pixel of a placed at (ax, ay) coincides
// with an opaque pixel of b placed at (bx, by).
func Overlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	if a == nil || b == nil {
		return false
	}
	dx := bx - ax
	dy := by - ay

	// Intersection in a's coordinates
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(a.w, dx+b.w)
	y1 := min(a.h, dy+b.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if a.Get(x, y) && b.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// pixel snaps a float coordinate to the pixel grid the same way for every
// body so neighbouring sprites never disagree by one pixel.
func pixel(v float64) int {
	return int(math.Floor(v))
}
