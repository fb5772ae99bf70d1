// Package ui draws the heads-up display, the game-over overlay and the
// debug overlays on top of the scene.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/systems"
)

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	AccentColor    rl.Color
	BarBg          rl.Color
	BarBorder      rl.Color
	PollutionLow   rl.Color
	PollutionMed   rl.Color
	PollutionHigh  rl.Color
	ForceFill      rl.Color
	ForceCharging  rl.Color
	Padding        int32
	LineHeight     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		LabelColor:     rl.White,
		ValueColor:     rl.LightGray,
		AccentColor:    rl.Yellow,
		BarBg:          rl.White,
		BarBorder:      rl.White,
		PollutionLow:   rl.Color{R: 0, G: 255, B: 0, A: 255},
		PollutionMed:   rl.Color{R: 0, G: 0, B: 255, A: 255},
		PollutionHigh:  rl.Color{R: 255, G: 0, B: 0, A: 255},
		ForceFill:      rl.Color{R: 100, G: 150, B: 200, A: 255},
		ForceCharging:  rl.Color{R: 255, G: 200, B: 60, A: 255},
		Padding:        10,
		LineHeight:     16,
		BarHeight:      16,
		FontSize:       14,
		HeaderFontSize: 20,
		TitleFontSize:  48,
	}
}

// PollutionColor returns the bar colour for a band.
func (t Theme) PollutionColor(b systems.PollutionBand) rl.Color {
	switch b {
	case systems.PollutionLow:
		return t.PollutionLow
	case systems.PollutionMedium:
		return t.PollutionMed
	default:
		return t.PollutionHigh
	}
}
