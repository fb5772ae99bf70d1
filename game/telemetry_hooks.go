package game

import (
	"log/slog"
)

// flushTelemetry writes the stats window once it has elapsed.
func (g *Game) flushTelemetry(now int64) {
	if !g.collector.ShouldFlush(now) {
		return
	}

	stats := g.collector.Flush(now, g.session.HUD())
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteWindow(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, now); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
