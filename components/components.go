// Package components defines ECS components for river entities.
//
// Trash items and splash effects live in an ark world; the pegador and the
// crocodiles are plain state machines owned by the session.
package components

// Position is the top-left corner of an entity in screen pixels.
type Position struct {
	X, Y float64
}

// Size holds the sprite dimensions used for culling and collision.
type Size struct {
	W, H float64
}

// Drift holds the vertical bounce velocity of a floating item.
// Horizontal motion always follows the river flow.
type Drift struct {
	VelY float64
}

// Trash identifies a floating item and its capture state.
type Trash struct {
	Category string
	Captured bool // frozen in place, moved only by the net holding it
}

// Splash is a short water-splash animation.
type Splash struct {
	StartMs int64 // clock time the animation began
	Frame   int   // current frame index
}
