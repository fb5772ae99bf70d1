package systems

import (
	"log/slog"

	"github.com/pthm-cable/rivercleanup/config"
)

// PollutionBand classifies the pollution level for display.
type PollutionBand uint8

const (
	PollutionLow PollutionBand = iota
	PollutionMedium
	PollutionHigh
)

func (b PollutionBand) String() string {
	switch b {
	case PollutionLow:
		return "low"
	case PollutionMedium:
		return "medium"
	}
	return "high"
}

// Pollution is the river's pollution meter. It starts half full, rises when
// trash escapes downstream and falls when trash is caught.
type Pollution struct {
	cfg    config.PollutionConfig
	points int
}

// NewPollution creates a meter at its starting level.
func NewPollution(cfg *config.Config) *Pollution {
	p := &Pollution{cfg: cfg.Pollution}
	p.Reset()
	return p
}

// Reset returns the meter to half full.
func (p *Pollution) Reset() {
	p.points = p.cfg.MaxPoints / 2
}

// Lose records an escaped item.
func (p *Pollution) Lose() {
	p.points = min(p.cfg.MaxPoints, p.points+p.cfg.LostPerTrash)
	slog.Debug("pollution increased", "points", p.points, "max", p.cfg.MaxPoints)
}

// Catch records a caught item.
func (p *Pollution) Catch() {
	p.points = max(0, p.points-p.cfg.CaughtPerTrash)
	slog.Debug("pollution decreased", "points", p.points, "max", p.cfg.MaxPoints)
}

// Points returns the current level.
func (p *Pollution) Points() int { return p.points }

// Max returns the meter capacity.
func (p *Pollution) Max() int { return p.cfg.MaxPoints }

// Percent returns the level as a percentage of capacity.
func (p *Pollution) Percent() float64 {
	return float64(p.points) / float64(p.cfg.MaxPoints) * 100
}

// Full reports whether the river is fully polluted.
func (p *Pollution) Full() bool {
	return p.points >= p.cfg.MaxPoints
}

// Band returns the display band for the current level.
func (p *Pollution) Band() PollutionBand {
	level := float64(p.points)
	capacity := float64(p.cfg.MaxPoints)
	switch {
	case level <= capacity*p.cfg.LowThreshold:
		return PollutionLow
	case level <= capacity*p.cfg.MediumThreshold:
		return PollutionMedium
	}
	return PollutionHigh
}

// Lives counts the pegadors the player has left.
type Lives struct {
	current int
	max     int
}

// NewLives creates a full counter.
func NewLives(n int) *Lives {
	return &Lives{current: n, max: n}
}

// Lose takes one life and returns how many remain.
func (l *Lives) Lose() int {
	if l.current > 0 {
		l.current--
	}
	slog.Info("pegador lost", "remaining", l.current, "max", l.max)
	return l.current
}

// Remaining returns the lives left.
func (l *Lives) Remaining() int { return l.current }

// Max returns the starting number of lives.
func (l *Lives) Max() int { return l.max }

// Exhausted reports whether no lives are left.
func (l *Lives) Exhausted() bool { return l.current <= 0 }

// Reset restores all lives.
func (l *Lives) Reset() { l.current = l.max }
