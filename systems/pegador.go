package systems

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/rivercleanup/config"
)

// PegadorState is the dip net's current phase.
type PegadorState uint8

const (
	PegadorIdle         PegadorState = iota // at the margin, moving sideways
	PegadorCharging                         // space held, force building up
	PegadorDescending                       // diving up into the river
	PegadorAscending                        // returning to the margin
	PegadorShowingCatch                     // holding the catch at the margin
	PegadorCaught                           // held in a crocodile's jaws
)

func (s PegadorState) String() string {
	switch s {
	case PegadorIdle:
		return "idle"
	case PegadorCharging:
		return "charging"
	case PegadorDescending:
		return "descending"
	case PegadorAscending:
		return "ascending"
	case PegadorShowingCatch:
		return "showing_catch"
	case PegadorCaught:
		return "caught"
	}
	return "unknown"
}

// Facing selects which pegador sprite is shown.
type Facing uint8

const (
	FacingFront Facing = iota
	FacingSide
)

// Controls is the keyboard state the pegador reacts to.
type Controls struct {
	Left, Right, Space bool
}

// Catchable is a trash item the net can hold.
type Catchable interface {
	Hold()                 // freeze the item in the net
	MoveTo(cx, cy float64) // centre the item on a point
	Release()              // drop the item back into the river
	Discard()              // remove the item after it was shown
}

// Captor is anything that can hold the pegador in its mouth.
type Captor interface {
	MouthPosition() (x, y float64)
}

// Pegador is the player's dip net. Its horizontal position is the sprite
// centre and its vertical position the sprite top; the sprite extends below
// the screen while at the margin.
type Pegador struct {
	cfg *config.Config

	centerX   float64
	top       float64
	halfWidth float64

	state  PegadorState
	force  float64
	target float64

	trash       Catchable
	showStartMs int64

	captor     Captor
	offX, offY float64
}

// NewPegador creates an idle pegador at the margin.
func NewPegador(cfg *config.Config, centerX, halfWidth float64) *Pegador {
	p := &Pegador{
		cfg:       cfg,
		top:       cfg.Pegador.MarginY,
		halfWidth: halfWidth,
		state:     PegadorIdle,
	}
	p.centerX = p.clampX(centerX)
	return p
}

// DiveTarget converts a charged force into the y the dive reaches. The force
// ratio is eased in cubically so that light presses barely leave the bottom
// of the band and only near-maximum force reaches its top.
func DiveTarget(force, maxForce, bandTop, bandBottom float64) float64 {
	ratio := 0.0
	if maxForce > 0 {
		ratio = math.Max(0, math.Min(1, force/maxForce))
	}
	return bandBottom - ratio*ratio*ratio*(bandBottom-bandTop)
}

// Update advances the state machine by one tick.
func (p *Pegador) Update(now int64, in Controls) {
	switch p.state {
	case PegadorIdle:
		p.move(in)
		if in.Space {
			p.setState(PegadorCharging)
			p.force = 0
		}

	case PegadorCharging:
		p.move(in)
		if in.Space {
			p.force = math.Min(p.force+p.cfg.Pegador.ChargeRate, p.cfg.Pegador.MaxForce)
			return
		}
		p.target = DiveTarget(p.force, p.cfg.Pegador.MaxForce, p.cfg.River.BandTop, p.cfg.River.BandBottom)
		p.setState(PegadorDescending)

	case PegadorDescending:
		p.top -= p.cfg.Pegador.VerticalSpeed
		if p.top <= p.target {
			p.setState(PegadorAscending)
		}

	case PegadorAscending:
		p.top += p.cfg.Pegador.VerticalSpeed
		p.carryTrash()
		if p.top >= p.cfg.Pegador.MarginY {
			p.top = p.cfg.Pegador.MarginY
			p.carryTrash()
			p.force = 0
			if p.trash != nil {
				p.showStartMs = now
				p.setState(PegadorShowingCatch)
			} else {
				p.setState(PegadorIdle)
			}
		}

	case PegadorShowingCatch:
		p.carryTrash()
		if now-p.showStartMs >= p.cfg.Pegador.ShowCatchMs {
			if p.trash != nil {
				p.trash.Discard()
				p.trash = nil
			}
			p.setState(PegadorIdle)
		}

	case PegadorCaught:
		mx, my := p.captor.MouthPosition()
		p.centerX = mx + p.offX
		p.top = my + p.offY
	}
}

// CaptureTrash puts an item in the net. It only succeeds while diving with
// an empty net, and turns the dive around immediately.
func (p *Pegador) CaptureTrash(t Catchable) bool {
	if p.state != PegadorDescending || p.trash != nil || t == nil {
		return false
	}
	p.trash = t
	t.Hold()
	p.carryTrash()
	p.setState(PegadorAscending)
	return true
}

// Seizable reports whether a crocodile can grab the pegador right now.
func (p *Pegador) Seizable() bool {
	return p.state == PegadorDescending || p.state == PegadorAscending
}

// Seize hands the pegador to a captor. From then on the pegador follows the
// captor's mouth at the offset it had at the moment of seizure. A held item
// falls back into the river.
func (p *Pegador) Seize(c Captor) bool {
	if !p.Seizable() || c == nil {
		return false
	}
	if p.trash != nil {
		p.trash.Release()
		p.trash = nil
	}
	mx, my := c.MouthPosition()
	p.captor = c
	p.offX = p.centerX - mx
	p.offY = p.top - my
	p.force = 0
	p.setState(PegadorCaught)
	return true
}

// State returns the current state.
func (p *Pegador) State() PegadorState { return p.state }

// Force returns the charged force.
func (p *Pegador) Force() float64 { return p.force }

// ForcePercent returns the charged force as a percentage of the maximum.
func (p *Pegador) ForcePercent() float64 {
	return p.force / p.cfg.Pegador.MaxForce * 100
}

// Target returns the y the current dive aims for.
func (p *Pegador) Target() float64 { return p.target }

// Position returns the sprite centre x and top y.
func (p *Pegador) Position() (centerX, top float64) { return p.centerX, p.top }

// CaptureOffset returns the offset from the captor's mouth recorded at seizure.
func (p *Pegador) CaptureOffset() (dx, dy float64) { return p.offX, p.offY }

// Captor returns the crocodile holding the pegador, if any.
func (p *Pegador) Captor() Captor { return p.captor }

// HasTrash reports whether an item is in the net.
func (p *Pegador) HasTrash() bool { return p.trash != nil }

// NetAnchor returns the point a held item is centred on.
func (p *Pegador) NetAnchor() (x, y float64) {
	return p.centerX, p.top + p.cfg.Pegador.NetOffset
}

// Facing returns the sprite orientation for the current state.
func (p *Pegador) Facing() Facing {
	if p.state == PegadorCharging || p.state == PegadorDescending {
		return FacingSide
	}
	return FacingFront
}

func (p *Pegador) move(in Controls) {
	if in.Left {
		p.centerX -= p.cfg.Pegador.Speed
	}
	if in.Right {
		p.centerX += p.cfg.Pegador.Speed
	}
	p.centerX = p.clampX(p.centerX)
}

func (p *Pegador) clampX(x float64) float64 {
	lo := p.halfWidth
	hi := p.cfg.Derived.ScreenW - p.halfWidth
	return math.Max(lo, math.Min(hi, x))
}

func (p *Pegador) carryTrash() {
	if p.trash != nil {
		p.trash.MoveTo(p.NetAnchor())
	}
}

func (p *Pegador) setState(s PegadorState) {
	if p.state == s {
		return
	}
	slog.Debug("pegador state", "from", p.state, "to", s, "force", p.force)
	p.state = s
}
