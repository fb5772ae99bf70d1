package systems

import (
	"log/slog"

	"github.com/pthm-cable/rivercleanup/config"
)

// Direction is the horizontal swim direction.
type Direction int8

const (
	SwimLeft  Direction = -1
	SwimRight Direction = 1
)

// EventKind tags a crocodile event.
type EventKind uint8

const (
	EventSplash   EventKind = iota // dove under or surfaced from full submersion
	EventChomp                     // grabbed the pegador
	EventReleased                  // let go of the pegador after carrying it off
)

func (k EventKind) String() string {
	switch k {
	case EventSplash:
		return "splash"
	case EventChomp:
		return "chomp"
	case EventReleased:
		return "released"
	}
	return "unknown"
}

// Event is an outbound notification drained by the session once per tick.
type Event struct {
	Kind    EventKind
	X, Y    float64  // where it happened
	Pegador *Pegador // set for EventChomp and EventReleased
}

type carryPhase uint8

const (
	carrySwimming carryPhase = iota // heading off-screen with the pegador
	carryWaiting                    // off-screen, holding before release
)

// Crocodile swims the river at one of five submersion levels and can carry
// the pegador off-screen. Behaviour is split between the crocodile itself,
// which owns its state and the carrying routine, and an injected Control
// strategy that decides regular movement and submersion changes.
type Crocodile struct {
	cfg *config.Config

	x, y float64
	w, h float64
	velY float64
	dir  Direction

	level  Level
	target Level

	control Control

	carrying    bool
	carried     *Pegador
	phase       carryPhase
	waitStartMs int64

	events []Event

	animTicks int
	animFrame int
}

// NewCrocodile creates a crocodile. Its sprite size comes from config.
func NewCrocodile(cfg *config.Config, x, y float64, dir Direction, level Level, control Control) *Crocodile {
	c := &Crocodile{
		cfg:     cfg,
		x:       x,
		y:       y,
		w:       float64(cfg.Crocodile.SpriteWidth) * cfg.Crocodile.Scale,
		h:       float64(cfg.Crocodile.SpriteHeight) * cfg.Crocodile.Scale,
		dir:     dir,
		level:   level,
		target:  level,
		control: control,
	}
	slog.Debug("crocodile created", "x", x, "y", y, "level", level)
	return c
}

// Update advances the crocodile by one tick.
func (c *Crocodile) Update(now int64) {
	prev := c.level
	c.control.UpdateState(c, now)
	if prev != c.level && (prev.Hidden() || c.level.Hidden()) {
		c.emit(Event{Kind: EventSplash, X: c.x + c.w/2, Y: c.y + c.h/2})
	}

	if c.level.Hidden() {
		return
	}

	if c.carrying {
		c.updateCarrying(now)
	} else {
		c.control.UpdateMovement(c, now)
	}

	c.animTicks++
	if c.animTicks >= c.cfg.Crocodile.AnimationTicks {
		c.animTicks = 0
		c.animFrame = (c.animFrame + 1) % 2
	}
}

func (c *Crocodile) updateCarrying(now int64) {
	switch c.phase {
	case carrySwimming:
		c.x += float64(c.dir) * c.cfg.Crocodile.CarrySpeed
		if c.OffScreen() {
			c.phase = carryWaiting
			c.waitStartMs = now
		}
	case carryWaiting:
		if now-c.waitStartMs >= c.cfg.Crocodile.CarryWaitMs {
			mx, my := c.MouthPosition()
			p := c.DropCarried()
			c.emit(Event{Kind: EventReleased, X: mx, Y: my, Pegador: p})
		}
	}
}

// StartCarrying grabs the pegador. It fails if already carrying.
func (c *Crocodile) StartCarrying(p *Pegador) bool {
	if c.carrying || p == nil {
		return false
	}
	c.carrying = true
	c.carried = p
	c.phase = carrySwimming
	mx, my := c.MouthPosition()
	c.emit(Event{Kind: EventChomp, X: mx, Y: my, Pegador: p})
	slog.Debug("crocodile carrying pegador", "x", c.x, "dir", c.dir)
	return true
}

// DropCarried stops carrying and returns the pegador that was held.
func (c *Crocodile) DropCarried() *Pegador {
	p := c.carried
	c.carrying = false
	c.carried = nil
	return p
}

// MouthPosition returns the carry anchor: a fixed distance in from the
// leading edge, at the vertical centre of the sprite.
func (c *Crocodile) MouthPosition() (x, y float64) {
	if c.dir == SwimRight {
		x = c.x + c.w - c.cfg.Crocodile.MouthOffset
	} else {
		x = c.x + c.cfg.Crocodile.MouthOffset
	}
	return x, c.y + c.h/2
}

// OffScreen reports whether the sprite is entirely outside the screen width.
func (c *Crocodile) OffScreen() bool {
	return c.x >= c.cfg.Derived.ScreenW || c.x+c.w <= 0
}

// Active reports whether the crocodile is visible and can collide.
func (c *Crocodile) Active() bool { return !c.level.Hidden() }

// Position returns the top-left corner of the sprite.
func (c *Crocodile) Position() (x, y float64) { return c.x, c.y }

// Size returns the sprite dimensions.
func (c *Crocodile) Size() (w, h float64) { return c.w, c.h }

// Direction returns the swim direction.
func (c *Crocodile) Direction() Direction { return c.dir }

// Level returns the current submersion level.
func (c *Crocodile) Level() Level { return c.level }

// TargetLevel returns the level the crocodile is moving toward.
func (c *Crocodile) TargetLevel() Level { return c.target }

// Carrying reports whether the crocodile holds the pegador.
func (c *Crocodile) Carrying() bool { return c.carrying }

// Carried returns the pegador being carried, if any.
func (c *Crocodile) Carried() *Pegador { return c.carried }

// AnimFrame returns the current animation frame (0 or 1).
func (c *Crocodile) AnimFrame() int { return c.animFrame }

// DrainEvents returns and clears the pending events.
func (c *Crocodile) DrainEvents() []Event {
	if len(c.events) == 0 {
		return nil
	}
	out := c.events
	c.events = nil
	return out
}

func (c *Crocodile) emit(e Event) {
	c.events = append(c.events, e)
}
