package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// GameOverAction is the player's choice on the game-over overlay.
type GameOverAction int

const (
	ActionNone GameOverAction = iota
	ActionRestart
	ActionQuit
)

// GameOverOverlay dims the scene and offers restart and quit buttons.
type GameOverOverlay struct {
	renderer *Renderer
	screenW  int32
	screenH  int32
}

// NewGameOverOverlay creates the overlay for the given screen size.
func NewGameOverOverlay(screenW, screenH int32) *GameOverOverlay {
	return &GameOverOverlay{renderer: NewRenderer(), screenW: screenW, screenH: screenH}
}

// Draw renders the overlay and returns the button pressed this frame.
// Enter restarts as well.
func (g *GameOverOverlay) Draw(finalScore int) GameOverAction {
	r := g.renderer
	t := r.Theme

	rl.DrawRectangle(0, 0, g.screenW, g.screenH, rl.Fade(rl.Black, 0.6))

	panelW, panelH := int32(360), int32(240)
	px := (g.screenW - panelW) / 2
	py := (g.screenH - panelH) / 2
	r.DrawPanel(px, py, panelW, panelH)

	cx := g.screenW / 2
	y := r.DrawCenteredText("FIM DE JOGO", cx, py+t.Padding*2, t.TitleFontSize, t.AccentColor)
	r.DrawCenteredText(fmt.Sprintf("Pontuação final: %d", finalScore), cx, y+t.Padding, t.HeaderFontSize, t.LabelColor)

	btnW, btnH := float32(140), float32(36)
	btnY := float32(py+panelH) - btnH - float32(t.Padding)*2
	gap := float32(t.Padding * 2)
	left := float32(cx) - btnW - gap/2

	action := ActionNone
	if gui.Button(rl.Rectangle{X: left, Y: btnY, Width: btnW, Height: btnH}, "Jogar de novo") || rl.IsKeyPressed(rl.KeyEnter) {
		action = ActionRestart
	}
	if gui.Button(rl.Rectangle{X: left + btnW + gap, Y: btnY, Width: btnW, Height: btnH}, "Sair") {
		action = ActionQuit
	}
	return action
}
