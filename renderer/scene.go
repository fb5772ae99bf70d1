package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/assets"
	"github.com/pthm-cable/rivercleanup/session"
	"github.com/pthm-cable/rivercleanup/systems"
)

// SceneRenderer draws the session render list.
type SceneRenderer struct {
	lib       *assets.Library
	frameSize float32
	debug     bool
}

// NewSceneRenderer creates a scene renderer. With debug set every sprite is
// outlined by its bounding box.
func NewSceneRenderer(lib *assets.Library, splashFrameSize int, debug bool) *SceneRenderer {
	return &SceneRenderer{lib: lib, frameSize: float32(splashFrameSize), debug: debug}
}

// SetDebug toggles bounding box outlines.
func (s *SceneRenderer) SetDebug(on bool) {
	s.debug = on
}

// Draw renders items in order.
func (s *SceneRenderer) Draw(items []session.RenderItem) {
	for i := range items {
		it := &items[i]
		dst := rl.Rectangle{X: float32(it.X), Y: float32(it.Y), Width: float32(it.W), Height: float32(it.H)}

		switch it.Kind {
		case session.RenderTrash:
			if tex, ok := s.lib.Trash[it.Category]; ok {
				drawWhole(tex, dst, false)
			}
		case session.RenderSplash:
			src := rl.Rectangle{X: 0, Y: float32(it.Frame) * s.frameSize, Width: s.frameSize, Height: s.frameSize}
			rl.DrawTexturePro(s.lib.Splash, src, dst, rl.Vector2{}, 0, rl.White)
		case session.RenderCrocodile:
			if tex, ok := s.lib.CrocodileFrame(it.Level, it.Frame); ok {
				drawWhole(tex, dst, it.FlipH)
			}
		case session.RenderPegador:
			tex := s.lib.PegadorFront
			if it.Facing == systems.FacingSide {
				tex = s.lib.PegadorSide
			}
			drawWhole(tex, dst, it.FlipH)
		}

		if s.debug {
			rl.DrawRectangleLinesEx(dst, 1, rl.Yellow)
		}
	}
}

// drawWhole stretches a full texture onto dst. A negative source width
// mirrors it horizontally.
func drawWhole(tex rl.Texture2D, dst rl.Rectangle, flip bool) {
	src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
	if flip {
		src.Width = -src.Width
	}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.White)
}
