package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rivercleanup/components"
	"github.com/pthm-cable/rivercleanup/config"
)

// SplashSystem advances splash animations on the clock.
type SplashSystem struct {
	filter ecs.Filter2[components.Position, components.Splash]
	cfg    config.SplashConfig
}

// NewSplashSystem creates a new splash system.
func NewSplashSystem(w *ecs.World, cfg *config.Config) *SplashSystem {
	return &SplashSystem{
		filter: *ecs.NewFilter2[components.Position, components.Splash](w),
		cfg:    cfg.Splash,
	}
}

// Update sets each splash's frame from the elapsed time and returns the
// splashes whose last frame has finished.
func (s *SplashSystem) Update(now int64) []ecs.Entity {
	var done []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		_, splash := query.Get()
		frame := 0
		if s.cfg.FrameMs > 0 {
			frame = int((now - splash.StartMs) / s.cfg.FrameMs)
		}
		if frame >= s.cfg.Frames {
			done = append(done, query.Entity())
			continue
		}
		splash.Frame = frame
	}
	return done
}
