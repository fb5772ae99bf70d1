package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/session"
)

// readInput samples the keys the session reacts to.
func readInput() session.Input {
	return session.Input{
		Left:   rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right:  rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
		Space:  rl.IsKeyDown(rl.KeySpace),
		Escape: rl.IsKeyPressed(rl.KeyEscape),
	}
}
