package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/telemetry"
	"github.com/pthm-cable/rivercleanup/ui"
)

// Draw renders the frame and closes the perf sample opened by Update.
func (g *Game) Draw() {
	g.perfCollector.Skip()
	g.perfCollector.RecordFrame()

	cfg := g.cfg
	sw, sh := int32(cfg.Screen.Width), int32(cfg.Screen.Height)

	now := g.now()
	dx, dy := g.camera.Offset(now)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Scene under the shake offset, HUD fixed
	rl.BeginMode2D(rl.Camera2D{Offset: rl.Vector2{X: dx, Y: dy}, Zoom: 1})
	g.river.Draw(g.session.RiverOffset())
	g.sign.Draw()

	g.scene.SetDebug(g.overlays.IsEnabled(ui.OverlayCollisionBoxes))
	g.scene.Draw(g.session.RenderList())

	if g.overlays.IsEnabled(ui.OverlayBand) {
		ui.DrawBand(cfg.River.BandTop, cfg.River.BandBottom, sw)
	}
	rl.EndMode2D()

	hud := g.session.HUD()
	g.hud.Draw(hud)

	if hud.GameOver {
		switch g.gameOver.Draw(hud.FinalScore) {
		case ui.ActionRestart:
			g.restart(now)
		case ui.ActionQuit:
			g.quit = true
		}
	}

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
	if g.debug {
		ui.DrawOverlayLegend(g.overlays, sw, sh)
	}

	rl.EndDrawing()
	g.perfCollector.Lap(telemetry.StageDraw)
	g.perfCollector.EndTick()
}
