package session

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rivercleanup/components"
	"github.com/pthm-cable/rivercleanup/systems"
)

// newPegador creates a pegador at the centre of the margin.
func (s *Session) newPegador() *systems.Pegador {
	half := float64(s.sprites.PegadorFront.Width()) / 2
	return systems.NewPegador(s.cfg, s.cfg.Derived.ScreenW/2, half)
}

// newFirstCrocodile creates the crocodile present from the start. In debug
// mode it is pinned in place and cycles through its levels.
func (s *Session) newFirstCrocodile(now int64) *systems.Crocodile {
	dbg := s.cfg.Crocodile.Debug
	if dbg.Enabled {
		ctrl := systems.NewFixedControl(dbg.X, dbg.Y, dbg.CycleMs, now)
		return systems.NewCrocodile(s.cfg, dbg.X, dbg.Y, systems.SwimRight, systems.FullySurfaced, ctrl)
	}
	ctrl := systems.NewRandomControl(s.cfg, s.rng, now)
	return systems.NewCrocodile(s.cfg, 0, s.crocodileY(), systems.SwimRight, systems.FullySurfaced, ctrl)
}

// newSecondCrocodile creates the crocodile that joins later, entering from
// the right edge.
func (s *Session) newSecondCrocodile(now int64) *systems.Crocodile {
	ctrl := systems.NewRandomControl(s.cfg, s.rng, now)
	return systems.NewCrocodile(s.cfg, s.cfg.Derived.ScreenW, s.crocodileY(), systems.SwimLeft, systems.MostlySubmerged, ctrl)
}

// crocodileY picks a random y that keeps the crocodile inside the band.
func (s *Session) crocodileY() float64 {
	h := float64(s.sprites.Crocodile[systems.FullySurfaced].Height())
	span := s.cfg.River.BandBottom - s.cfg.River.BandTop - h
	if span <= 0 {
		return s.cfg.River.BandTop
	}
	return s.cfg.River.BandTop + s.rng.Float64()*span
}

// SpawnTrash puts a new item of the given category at the upstream edge.
// Unknown categories fall back to the first catalog entry.
func (s *Session) SpawnTrash(category string, y float64) ecs.Entity {
	mask, ok := s.sprites.Trash[category]
	if !ok {
		slog.Warn("unknown trash category", "category", category)
		category = s.cfg.Derived.Categories[0]
		mask = s.sprites.Trash[category]
	}
	w, h := float64(mask.Width()), float64(mask.Height())
	x := systems.SpawnX(w, s.cfg.River.FlowSpeed, s.cfg.Derived.ScreenW)
	maxVel := s.cfg.Trash.MaxBounceSpeed
	velY := -maxVel + s.rng.Float64()*2*maxVel

	e := s.trashMapper.NewEntity(
		&components.Position{X: x, Y: y},
		&components.Size{W: w, H: h},
		&components.Drift{VelY: velY},
		&components.Trash{Category: category},
	)
	s.notify(Event{Kind: EventSpawned, Category: category, X: x, Y: y})
	return e
}

// trashHandle lets the pegador hold an item that lives in the world.
type trashHandle struct {
	s      *Session
	entity ecs.Entity
}

func (s *Session) handle(e ecs.Entity) *trashHandle {
	return &trashHandle{s: s, entity: e}
}

func (h *trashHandle) Hold() {
	if !h.s.world.Alive(h.entity) {
		return
	}
	h.s.trashMap.Get(h.entity).Captured = true
}

func (h *trashHandle) MoveTo(cx, cy float64) {
	if !h.s.world.Alive(h.entity) {
		return
	}
	pos := h.s.posMap.Get(h.entity)
	size := h.s.sizeMap.Get(h.entity)
	pos.X = cx - size.W/2
	pos.Y = cy - size.H/2
}

func (h *trashHandle) Release() {
	if !h.s.world.Alive(h.entity) {
		return
	}
	h.s.trashMap.Get(h.entity).Captured = false
}

func (h *trashHandle) Discard() {
	if h.s.world.Alive(h.entity) {
		h.s.world.RemoveEntity(h.entity)
	}
}
