package session

import (
	"math"

	"github.com/pthm-cable/rivercleanup/systems"
)

// Autopilot plays the pegador for headless runs. It lines up under the
// closest free item, charges just enough force for the dive to reach it and
// lets go. It never tries to dodge crocodiles.
type Autopilot struct {
	s *Session
}

// NewAutopilot creates an autopilot driving the given session.
func NewAutopilot(s *Session) *Autopilot {
	return &Autopilot{s: s}
}

type aim struct {
	x     float64 // predicted item centre when the dive arrives
	force float64 // force needed to reach the item
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next() Input {
	p := a.s.pegador
	if p == nil {
		return Input{}
	}
	switch p.State() {
	case systems.PegadorIdle:
		target, ok := a.pick(p, 0)
		if !ok {
			return Input{}
		}
		in := a.steer(p, target.x)
		in.Space = !in.Left && !in.Right
		return in

	case systems.PegadorCharging:
		target, ok := a.pick(p, p.Force())
		if !ok {
			return Input{}
		}
		in := a.steer(p, target.x)
		in.Space = p.Force() < target.force
		return in
	}
	return Input{}
}

// pick chooses the free item whose predicted position is closest to the
// pegador. charged is the force already built up.
func (a *Autopilot) pick(p *systems.Pegador, charged float64) (aim, bool) {
	cfg := a.s.cfg
	px, _ := p.Position()
	drift := -cfg.River.FlowSpeed

	best := aim{}
	bestDist := math.Inf(1)
	query := a.s.trashFilter.Query()
	for query.Next() {
		pos, size, trash := query.Get()
		if trash.Captured {
			continue
		}
		// Aim a little above the item so vertical bobbing cannot outrun the dive
		goal := math.Max(cfg.River.BandTop, pos.Y-size.H/2)
		force := ForceFor(goal, cfg.Pegador.MaxForce, cfg.River.BandTop, cfg.River.BandBottom)

		chargeTicks := math.Max(0, (force-charged)/cfg.Pegador.ChargeRate)
		diveTicks := (cfg.Pegador.MarginY - goal) / cfg.Pegador.VerticalSpeed
		cx := pos.X + size.W/2 + drift*(chargeTicks+diveTicks)
		if cx < 0 || cx > cfg.Derived.ScreenW {
			continue
		}

		if d := math.Abs(cx - px); d < bestDist {
			bestDist = d
			best = aim{x: cx, force: force}
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

func (a *Autopilot) steer(p *systems.Pegador, x float64) Input {
	px, _ := p.Position()
	speed := a.s.cfg.Pegador.Speed
	switch {
	case x < px-speed:
		return Input{Left: true}
	case x > px+speed:
		return Input{Right: true}
	}
	return Input{}
}

// ForceFor inverts DiveTarget: it returns the force whose dive reaches y.
func ForceFor(y, maxForce, bandTop, bandBottom float64) float64 {
	span := bandBottom - bandTop
	if span <= 0 {
		return maxForce
	}
	ratio := math.Max(0, math.Min(1, (bandBottom-y)/span))
	return math.Cbrt(ratio) * maxForce
}
