package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rivercleanup/components"
	"github.com/pthm-cable/rivercleanup/config"
)

// DriftSystem floats trash along the river.
type DriftSystem struct {
	filter ecs.Filter4[components.Position, components.Size, components.Drift, components.Trash]
	cfg    *config.Config
}

// NewDriftSystem creates a new drift system.
func NewDriftSystem(w *ecs.World, cfg *config.Config) *DriftSystem {
	return &DriftSystem{
		filter: *ecs.NewFilter4[components.Position, components.Size, components.Drift, components.Trash](w),
		cfg:    cfg,
	}
}

// Update moves every free item with the water and bounces it inside the band.
// The background scrolls by the flow speed, so items on the water move the
// opposite way to stay in sync with the texture.
func (s *DriftSystem) Update() {
	river := s.cfg.River
	query := s.filter.Query()
	for query.Next() {
		pos, size, drift, trash := query.Get()
		if trash.Captured {
			continue
		}
		pos.X -= river.FlowSpeed
		pos.Y += drift.VelY
		bounceInBand(&pos.Y, &drift.VelY, size.H, river)
	}
}

// Lost returns free items that have fully left the screen on the downstream
// side. The caller removes them once the query is closed.
func (s *DriftSystem) Lost() []ecs.Entity {
	var lost []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		pos, size, _, trash := query.Get()
		if trash.Captured {
			continue
		}
		if Downstream(pos.X, size.W, s.cfg.River.FlowSpeed, s.cfg.Derived.ScreenW) {
			lost = append(lost, query.Entity())
		}
	}
	return lost
}

// Downstream reports whether an item of width w at x has fully exited the
// screen edge the water carries it toward.
func Downstream(x, w, flowSpeed, screenW float64) bool {
	if flowSpeed < 0 {
		// Items drift right
		return x >= screenW
	}
	return x+w <= 0
}

// SpawnX returns the x at which a new item of width w enters: flush with the
// upstream screen edge.
func SpawnX(w, flowSpeed, screenW float64) float64 {
	if flowSpeed < 0 {
		return 0
	}
	return screenW - w
}
