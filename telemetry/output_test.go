package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/rivercleanup/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatal(err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Every method is a no-op on nil
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteEvent(EventRecord{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteSummary(RunSummary{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir() = %q, want empty", om.Dir())
	}
}

func TestOutputManagerHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := om.WriteWindow(WindowStats{Game: 1, WindowEndMs: int64(i+1) * 1000}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WritePerf(PerfStats{}, 1000); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "windows.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("windows.csv has %d lines, want 4:\n%s", len(lines), data)
	}
	if got := strings.Count(string(data), "window_end_ms"); got != 1 {
		t.Errorf("header written %d times, want 1", got)
	}

	perf, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(perf), "window_end_ms,ticks,avg_tick_us,max_tick_us,fps,input_us,river_us,") {
		t.Errorf("perf.csv header = %q", strings.SplitN(string(perf), "\n", 2)[0])
	}
}

func TestOutputManagerYAML(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer om.Close()

	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("written config does not load: %v", err)
	}

	want := RunSummary{SessionID: "abc", Totals: RunTotals{Games: 2, Caught: 5}}
	if err := om.WriteSummary(want); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "summary.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	var got RunSummary
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.SessionID != want.SessionID || got.Totals != want.Totals {
		t.Errorf("summary = %+v, want %+v", got, want)
	}
}
