package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/session"
	"github.com/pthm-cable/rivercleanup/telemetry"
)

// PerfPanel renders per-stage frame timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw lists every stage with its average time. The session steps are
// indented under a session total. Draw includes the frame wait, so it is
// never highlighted.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	stages := telemetry.Stages()

	height := padding*2 + lineHeight*int32(len(stages)+3)
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + padding
	y := p.y + padding
	rl.DrawText(fmt.Sprintf("FPS %.0f  tick %dus", stats.FPS, stats.AvgTick.Microseconds()), x, y, 12, rl.White)
	y += lineHeight + 4

	for _, stage := range stages {
		if stage == telemetry.Stage(session.StepRiver) {
			rl.DrawText(fmt.Sprintf("%-12s %5dus", "session", stats.SessionTime().Microseconds()), x, y, 12, rl.White)
			y += lineHeight
		}
		name := stage.String()
		indent := int32(0)
		if stage < telemetry.StageInput {
			indent = 10
		}

		color := rl.LightGray
		if stage != telemetry.StageDraw {
			if pct := stats.Share(stage); pct > 25 {
				color = rl.Red
			} else if pct > 10 {
				color = rl.Orange
			}
		}
		rl.DrawText(fmt.Sprintf("%-12s %5dus", name, stats.StageAvg[stage].Microseconds()), x+indent, y, 12, color)
		y += lineHeight
	}
}

// DrawBand outlines the river band between top and bottom.
func DrawBand(top, bottom float64, screenW int32) {
	color := rl.Fade(rl.SkyBlue, 0.8)
	rl.DrawLine(0, int32(top), screenW, int32(top), color)
	rl.DrawLine(0, int32(bottom), screenW, int32(bottom), color)
}

// DrawOverlayLegend lists the overlay keys along the bottom edge.
func DrawOverlayLegend(reg *OverlayRegistry, screenW, screenH int32) {
	x := screenW - 10
	y := screenH - 20
	for i := len(reg.All()) - 1; i >= 0; i-- {
		desc := reg.All()[i]
		text := fmt.Sprintf("[%s] %s", desc.KeyLabel, desc.Name)
		color := rl.Gray
		if reg.IsEnabled(desc.ID) {
			color = rl.Green
		}
		x -= rl.MeasureText(text, 12) + 12
		rl.DrawText(text, x, y, 12, color)
	}
}
