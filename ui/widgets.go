package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawBar draws a bordered bar filled left to right by ratio in [0, 1].
func (r *Renderer) DrawBar(x, y, width, height int32, ratio float32, fill rl.Color) {
	ratio = clamp01(ratio)

	const border = 2
	rl.DrawRectangle(x-border, y-border, width+border*2, height+border*2, r.Theme.BarBorder)
	rl.DrawRectangle(x, y, width, height, r.Theme.BarBg)

	if w := int32(float32(width) * ratio); w > 0 {
		rl.DrawRectangle(x, y, w, height, fill)
	}
}

// DrawCenteredText draws text horizontally centred on cx and returns the
// y below it.
func (r *Renderer) DrawCenteredText(text string, cx, y, size int32, color rl.Color) int32 {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
	return y + size + 4
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
