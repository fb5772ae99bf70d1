package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/session"
)

// Lives icon size and spacing.
const (
	lifeIconW     = 16
	lifeIconH     = 48
	lifeIconGap   = 22
	lostLifeAlpha = 0.2
)

// HUD renders the score, lives, pollution and force bars, and the wave banner.
type HUD struct {
	renderer *Renderer
	icon     rl.Texture2D
	screenW  int32
	screenH  int32
}

// NewHUD creates a HUD. icon is drawn once per life.
func NewHUD(icon rl.Texture2D, screenW, screenH int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		icon:     icon,
		screenW:  screenW,
		screenH:  screenH,
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data session.HUD) {
	r := h.renderer
	t := r.Theme

	rl.DrawText(fmt.Sprintf("Score: %d", data.Score), t.Padding, t.Padding, t.HeaderFontSize, t.LabelColor)

	h.drawLives(t.Padding, t.Padding+t.HeaderFontSize+8, data.Lives, data.MaxLives)

	// Pollution bar, top centre
	barW := h.screenW / 3
	barX := (h.screenW - barW) / 2
	barY := t.Padding + 4
	r.DrawBar(barX, barY, barW, t.BarHeight, float32(data.PollutionPercent/100), t.PollutionColor(data.PollutionBand))
	center := barX + barW/2
	rl.DrawLine(center, barY, center, barY+t.BarHeight, t.PanelBorder)
	r.DrawCenteredText("POLUIÇÃO", center, barY+t.BarHeight+4, t.FontSize, t.LabelColor)

	// Force bar, bottom left
	forceW := int32(160)
	forceY := h.screenH - t.Padding - t.BarHeight
	fill := t.ForceFill
	if data.Charging {
		fill = t.ForceCharging
	}
	rl.DrawText("FORÇA", t.Padding, forceY-t.FontSize-6, t.FontSize, t.LabelColor)
	r.DrawBar(t.Padding, forceY, forceW, t.BarHeight, float32(data.ForcePercent/100), fill)

	if data.InWave {
		r.DrawCenteredText("ONDA DE LIXO!", h.screenW/2, h.screenH/4, t.HeaderFontSize+8, t.AccentColor)
	}
}

// drawLives draws one icon per life, faded for lost lives.
func (h *HUD) drawLives(x, y int32, lives, maxLives int) {
	src := rl.Rectangle{Width: float32(h.icon.Width), Height: float32(h.icon.Height)}
	for i := 0; i < maxLives; i++ {
		dst := rl.Rectangle{X: float32(x + int32(i)*lifeIconGap), Y: float32(y), Width: lifeIconW, Height: lifeIconH}
		tint := rl.White
		if i >= lives {
			tint = rl.Fade(rl.White, lostLifeAlpha)
		}
		rl.DrawTexturePro(h.icon, src, dst, rl.Vector2{}, 0, tint)
	}
}
