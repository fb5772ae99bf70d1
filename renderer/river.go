package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RiverRenderer tiles the scrolling water texture and the static margins.
type RiverRenderer struct {
	water   rl.Texture2D
	margins rl.Texture2D
	screenW float32
}

// NewRiverRenderer creates a river renderer for textures already scaled to
// the screen height.
func NewRiverRenderer(water, margins rl.Texture2D, screenW int32) *RiverRenderer {
	return &RiverRenderer{water: water, margins: margins, screenW: float32(screenW)}
}

// Draw renders the river shifted by offset, then the margins on top.
func (r *RiverRenderer) Draw(offset float64) {
	r.tile(r.water, offset)
	r.tile(r.margins, 0)
}

// tile covers the screen width with copies of tex shifted by -offset.
func (r *RiverRenderer) tile(tex rl.Texture2D, offset float64) {
	w := float64(tex.Width)
	if w <= 0 {
		return
	}
	start := math.Mod(-offset, w)
	if start > 0 {
		start -= w
	}
	for x := start; x < float64(r.screenW); x += w {
		rl.DrawTexture(tex, int32(x), 0, rl.White)
	}
}
