package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/rivercleanup/config"
	"github.com/pthm-cable/rivercleanup/session"
)

// Collector observes a session, writes every event to the output and
// accumulates windowed statistics.
type Collector struct {
	sessionID     string
	windowMs      int64
	windowStartMs int64
	out           *OutputManager
	game          int

	// Event counters for current window
	spawned  int
	caught   int
	lost     int
	seized   int
	released int
	waves    int
	forces   []float64
	catchYs  []float64

	// Whole-run accumulators
	totals     RunTotals
	allForces  []float64
	gameScores []float64
}

// RunTotals counts events over a whole run.
type RunTotals struct {
	Games    int `yaml:"games"`
	Spawned  int `yaml:"spawned"`
	Caught   int `yaml:"caught"`
	Lost     int `yaml:"lost"`
	Seized   int `yaml:"seized"`
	Released int `yaml:"released"`
	Waves    int `yaml:"waves"`
}

// RunSummary is the end-of-run report.
type RunSummary struct {
	SessionID string    `yaml:"session"`
	Totals    RunTotals `yaml:"totals"`
	Force     Summary   `yaml:"catch_force"`
	Scores    Summary   `yaml:"game_scores"`
}

// NewCollector creates a collector whose first window starts at now. out may
// be nil to keep statistics in memory only.
func NewCollector(cfg *config.Config, out *OutputManager, now int64) *Collector {
	windowMs := cfg.Telemetry.WindowMs
	if windowMs < 1 {
		windowMs = 1
	}
	return &Collector{
		sessionID:     NewSessionID(),
		windowMs:      windowMs,
		windowStartMs: now,
		out:           out,
		game:          1,
		totals:        RunTotals{Games: 1},
	}
}

// SessionID returns the identifier stamped on every record.
func (c *Collector) SessionID() string { return c.sessionID }

// Observe records a session event. It implements session.Observer.
func (c *Collector) Observe(e session.Event) {
	switch e.Kind {
	case session.EventSpawned:
		c.spawned++
		c.totals.Spawned++
	case session.EventCaught:
		c.caught++
		c.totals.Caught++
		c.forces = append(c.forces, e.Force)
		c.catchYs = append(c.catchYs, e.Y)
		c.allForces = append(c.allForces, e.Force)
	case session.EventLost:
		c.lost++
		c.totals.Lost++
	case session.EventSeized:
		c.seized++
		c.totals.Seized++
	case session.EventReleased:
		c.released++
		c.totals.Released++
	case session.EventWave:
		c.waves++
		c.totals.Waves++
	case session.EventGameOver:
		c.gameScores = append(c.gameScores, float64(e.Score))
	case session.EventRestart:
		c.game++
		c.totals.Games++
	}

	if err := c.out.WriteEvent(NewEventRecord(c.sessionID, c.game, e)); err != nil {
		slog.Warn("telemetry event not written", "error", err)
	}
}

// ShouldFlush returns true if the current window has elapsed.
func (c *Collector) ShouldFlush(now int64) bool {
	return now-c.windowStartMs >= c.windowMs
}

// Flush produces a WindowStats from the counters and the session state, and
// resets counters for the next window.
func (c *Collector) Flush(now int64, hud session.HUD) WindowStats {
	var catchRate float64
	if resolved := c.caught + c.lost; resolved > 0 {
		catchRate = float64(c.caught) / float64(resolved)
	}
	force := Summarize(c.forces)
	catchY := Summarize(c.catchYs)

	stats := WindowStats{
		SessionID:     c.sessionID,
		Game:          c.game,
		WindowStartMs: c.windowStartMs,
		WindowEndMs:   now,

		Spawned:  c.spawned,
		Caught:   c.caught,
		Lost:     c.lost,
		Seized:   c.seized,
		Released: c.released,
		Waves:    c.waves,

		CatchRate: catchRate,

		Score:     hud.Score,
		Lives:     hud.Lives,
		Pollution: hud.PollutionPercent,
		InWave:    hud.InWave,

		ForceMean: force.Mean,
		ForceStd:  force.Std,
		ForceP50:  force.P50,
		ForceP90:  force.P90,

		CatchYMean: catchY.Mean,
		CatchYP10:  catchY.P10,
	}

	// Reset for next window
	c.windowStartMs = now
	c.spawned = 0
	c.caught = 0
	c.lost = 0
	c.seized = 0
	c.released = 0
	c.waves = 0
	c.forces = c.forces[:0]
	c.catchYs = c.catchYs[:0]

	return stats
}

// Summary returns the whole-run report so far.
func (c *Collector) Summary() RunSummary {
	return RunSummary{
		SessionID: c.sessionID,
		Totals:    c.totals,
		Force:     Summarize(c.allForces),
		Scores:    Summarize(c.gameScores),
	}
}
