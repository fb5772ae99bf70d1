package systems

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/pthm-cable/rivercleanup/config"
)

// Control decides how a crocodile moves and changes depth when it is not
// carrying the pegador.
type Control interface {
	// UpdateState picks submersion targets and steps the level toward them.
	UpdateState(c *Crocodile, now int64)
	// UpdateMovement moves a visible, non-carrying crocodile.
	UpdateMovement(c *Crocodile, now int64)
}

// RandomControl swims back and forth across the river with a random vertical
// drift and random changes of depth.
type RandomControl struct {
	cfg *config.Config
	rng *rand.Rand

	stateTimerMs int64
	nextStateMs  int64
	velTimerMs   int64
	nextVelMs    int64
}

// NewRandomControl creates the default control with timers starting at now.
func NewRandomControl(cfg *config.Config, rng *rand.Rand, now int64) *RandomControl {
	r := &RandomControl{cfg: cfg, rng: rng, stateTimerMs: now, velTimerMs: now}
	r.nextStateMs = randRange(rng, cfg.Crocodile.StateChangeMinMs, cfg.Crocodile.StateChangeMaxMs)
	r.nextVelMs = randRange(rng, cfg.Crocodile.VelChangeMinMs, cfg.Crocodile.VelChangeMaxMs)
	return r
}

// UpdateState periodically re-picks a neighbouring target level.
func (r *RandomControl) UpdateState(c *Crocodile, now int64) {
	if now-r.stateTimerMs > r.nextStateMs {
		old := c.target
		c.target = NeighborTarget(c.target, r.rng)
		r.stateTimerMs = now
		r.nextStateMs = randRange(r.rng, r.cfg.Crocodile.StateChangeMinMs, r.cfg.Crocodile.StateChangeMaxMs)
		slog.Debug("crocodile target level", "from", old, "to", c.target, "current", c.level)
	}
	c.level = c.level.Toward(c.target)
}

// UpdateMovement swims horizontally, turning around once well past an edge,
// and drifts vertically inside the river band.
func (r *RandomControl) UpdateMovement(c *Crocodile, now int64) {
	cfg := &r.cfg.Crocodile

	c.x += float64(c.dir) * cfg.SwimSpeed
	switch {
	case c.dir == SwimRight && c.x > r.cfg.Derived.ScreenW+cfg.TurnMargin:
		c.dir = SwimLeft
	case c.dir == SwimLeft && c.x+c.w < -cfg.TurnMargin:
		c.dir = SwimRight
	}

	if now-r.velTimerMs >= r.nextVelMs {
		c.velY = randUniform(r.rng, -cfg.MaxVelY, cfg.MaxVelY)
		r.velTimerMs = now
		r.nextVelMs = randRange(r.rng, cfg.VelChangeMinMs, cfg.VelChangeMaxMs)
	}
	c.velY += randUniform(r.rng, -cfg.Wobble, cfg.Wobble)
	c.velY = math.Max(-cfg.MaxVelY, math.Min(cfg.MaxVelY, c.velY))
	c.y += c.velY

	bounceInBand(&c.y, &c.velY, c.h, r.cfg.River)
}

// NeighborTarget picks the next submersion target near the current one.
// From mostly surfaced only mostly surfaced or mostly submerged are chosen,
// from fully submerged only head-only or fully submerged, otherwise any level
// within one step.
func NeighborTarget(current Level, rng *rand.Rand) Level {
	switch current {
	case MostlySurfaced:
		return MostlySurfaced + Level(rng.Intn(2))
	case FullySubmerged:
		return HeadOnly + Level(rng.Intn(2))
	}
	return ClampLevel(int(current) + rng.Intn(3) - 1)
}

// FixedControl pins the crocodile at one position and walks its level up
// and down through every value in order.
type FixedControl struct {
	x, y    float64
	cycleMs int64
	timerMs int64
	rising  bool
}

// NewFixedControl creates a debug control holding the crocodile at (x, y).
func NewFixedControl(x, y float64, cycleMs, now int64) *FixedControl {
	return &FixedControl{x: x, y: y, cycleMs: cycleMs, timerMs: now, rising: true}
}

// UpdateState steps 0→1→2→3→4→3→…→0→1 one level per cycle.
func (f *FixedControl) UpdateState(c *Crocodile, now int64) {
	if now-f.timerMs >= f.cycleMs {
		f.timerMs = now
		if f.rising && c.level == FullySubmerged {
			f.rising = false
		} else if !f.rising && c.level == FullySurfaced {
			f.rising = true
		}
		if f.rising {
			c.target = c.level.Next()
		} else {
			c.target = c.level.Prev()
		}
	}
	c.level = c.level.Toward(c.target)
}

// UpdateMovement keeps the crocodile in place.
func (f *FixedControl) UpdateMovement(c *Crocodile, now int64) {
	c.x = f.x
	c.y = f.y
	c.velY = 0
}

// bounceInBand keeps a sprite of height h inside the river band, reversing
// its vertical velocity when it touches either bound.
func bounceInBand(y, velY *float64, h float64, river config.RiverConfig) {
	if *y < river.BandTop {
		*y = river.BandTop
		*velY *= river.BounceReversal
	} else if *y+h > river.BandBottom {
		*y = river.BandBottom - h
		*velY *= river.BounceReversal
	}
}
