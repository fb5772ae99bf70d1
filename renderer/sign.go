package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/content"
)

// Sign layout inside the board texture.
const (
	signScale    = 2.0
	signMarginX  = 30
	signMarginY  = 40
	signFontSize = 18
)

// SignRenderer draws the riverside board with an environmental phrase.
type SignRenderer struct {
	board rl.Texture2D
	x, y  float32 // top centre
	lines []string
}

// NewSignRenderer wraps phrase to the board width once.
func NewSignRenderer(board rl.Texture2D, centerX, top float32, phrase string) *SignRenderer {
	s := &SignRenderer{board: board, x: centerX, y: top}
	maxWidth := float64(s.width() - 2*signMarginX)
	s.lines = content.Wrap(phrase, maxWidth, func(text string) float64 {
		return float64(rl.MeasureText(text, signFontSize))
	})
	return s
}

// SetPhrase replaces the text, for a new game.
func (s *SignRenderer) SetPhrase(phrase string) {
	*s = *NewSignRenderer(s.board, s.x, s.y, phrase)
}

func (s *SignRenderer) width() float32 {
	return float32(s.board.Width) * signScale
}

// Draw renders the board and the wrapped lines centred from the top margin.
func (s *SignRenderer) Draw() {
	w := s.width()
	h := float32(s.board.Height) * signScale
	left := s.x - w/2

	src := rl.Rectangle{Width: float32(s.board.Width), Height: float32(s.board.Height)}
	dst := rl.Rectangle{X: left, Y: s.y, Width: w, Height: h}
	rl.DrawTexturePro(s.board, src, dst, rl.Vector2{}, 0, rl.White)

	y := int32(s.y) + signMarginY
	for _, line := range s.lines {
		lw := rl.MeasureText(line, signFontSize)
		rl.DrawText(line, int32(left+w/2)-lw/2, y, signFontSize, rl.Black)
		y += signFontSize + 2
	}
}
