package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/rivercleanup/config"
	"github.com/pthm-cable/rivercleanup/session"
)

func TestCollectorWindow(t *testing.T) {
	cfg := config.Default()
	c := NewCollector(cfg, nil, 0)

	if c.ShouldFlush(cfg.Telemetry.WindowMs - 1) {
		t.Error("ShouldFlush before the window elapsed")
	}
	if !c.ShouldFlush(cfg.Telemetry.WindowMs) {
		t.Error("ShouldFlush = false at the window end")
	}

	events := []session.Event{
		{Kind: session.EventSpawned, Category: "plastic"},
		{Kind: session.EventSpawned, Category: "metal"},
		{Kind: session.EventSpawned, Category: "glass"},
		{Kind: session.EventCaught, Category: "plastic", Force: 40, Y: 200},
		{Kind: session.EventCaught, Category: "metal", Force: 80, Y: 300},
		{Kind: session.EventLost, Category: "glass"},
		{Kind: session.EventSeized, Force: 20},
		{Kind: session.EventWave},
	}
	for _, e := range events {
		c.Observe(e)
	}

	hud := session.HUD{Score: 20, Lives: 2, PollutionPercent: 10, InWave: true}
	stats := c.Flush(cfg.Telemetry.WindowMs, hud)

	tests := []struct {
		name      string
		got, want any
	}{
		{"spawned", stats.Spawned, 3},
		{"caught", stats.Caught, 2},
		{"lost", stats.Lost, 1},
		{"seized", stats.Seized, 1},
		{"waves", stats.Waves, 1},
		{"score", stats.Score, 20},
		{"lives", stats.Lives, 2},
		{"in wave", stats.InWave, true},
		{"force mean", stats.ForceMean, 60.0},
		{"catch y mean", stats.CatchYMean, 250.0},
		{"window end", stats.WindowEndMs, cfg.Telemetry.WindowMs},
		{"session", stats.SessionID, c.SessionID()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if got, want := stats.CatchRate, 2.0/3.0; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("CatchRate = %v, want %v", got, want)
	}

	next := c.Flush(2*cfg.Telemetry.WindowMs, hud)
	if next.Spawned != 0 || next.Caught != 0 || next.ForceMean != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartMs != cfg.Telemetry.WindowMs {
		t.Errorf("WindowStartMs = %d, want %d", next.WindowStartMs, cfg.Telemetry.WindowMs)
	}
}

func TestCollectorSummary(t *testing.T) {
	c := NewCollector(config.Default(), nil, 0)

	c.Observe(session.Event{Kind: session.EventCaught, Force: 50})
	c.Observe(session.Event{Kind: session.EventGameOver, Score: 10})
	c.Observe(session.Event{Kind: session.EventRestart})
	c.Observe(session.Event{Kind: session.EventGameOver, Score: 30})

	s := c.Summary()
	if s.Totals.Games != 2 {
		t.Errorf("Games = %d, want 2", s.Totals.Games)
	}
	if s.Totals.Caught != 1 {
		t.Errorf("Caught = %d, want 1", s.Totals.Caught)
	}
	if s.Scores.Count != 2 || s.Scores.Mean != 20 || s.Scores.Max != 30 {
		t.Errorf("Scores = %+v, want two games averaging 20", s.Scores)
	}
}

func TestCollectorWritesEvents(t *testing.T) {
	dir := t.TempDir()
	out, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	c := NewCollector(config.Default(), out, 0)
	c.Observe(session.Event{Kind: session.EventSpawned, Category: "plastic", AtMs: 100})
	c.Observe(session.Event{Kind: session.EventLost, Category: "plastic", AtMs: 900})
	if err := out.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "events.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("events.csv has %d lines, want header plus 2 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "session,game,at_ms,kind") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], ",900,lost,plastic,") {
		t.Errorf("second row = %q", lines[2])
	}
}
