package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	SessionID     string `csv:"session"`
	Game          int    `csv:"game"`
	WindowStartMs int64  `csv:"window_start_ms"`
	WindowEndMs   int64  `csv:"window_end_ms"`

	// Events during window
	Spawned  int `csv:"spawned"`
	Caught   int `csv:"caught"`
	Lost     int `csv:"lost"`
	Seized   int `csv:"seized"`
	Released int `csv:"released"`
	Waves    int `csv:"waves"`

	// Share of resolved items that were caught
	CatchRate float64 `csv:"catch_rate"`

	// Session state at window end
	Score     int     `csv:"score"`
	Lives     int     `csv:"lives"`
	Pollution float64 `csv:"pollution"`
	InWave    bool    `csv:"in_wave"`

	// Dive force of successful catches, in percent
	ForceMean float64 `csv:"force_mean"`
	ForceStd  float64 `csv:"force_std"`
	ForceP50  float64 `csv:"force_p50"`
	ForceP90  float64 `csv:"force_p90"`

	// Height of caught items
	CatchYMean float64 `csv:"catch_y_mean"`
	CatchYP10  float64 `csv:"catch_y_p10"`
}

// Summary describes a sample of values.
type Summary struct {
	Count int     `yaml:"count"`
	Mean  float64 `yaml:"mean"`
	Std   float64 `yaml:"std"`
	P10   float64 `yaml:"p10"`
	P50   float64 `yaml:"p50"`
	P90   float64 `yaml:"p90"`
	Max   float64 `yaml:"max"`
}

// Summarize computes mean, sample standard deviation and empirical
// percentiles. An empty sample yields the zero Summary.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := Summary{
		Count: n,
		Mean:  stat.Mean(sorted, nil),
		P10:   stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:   stat.Quantile(0.90, stat.Empirical, sorted, nil),
		Max:   sorted[n-1],
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"game", s.Game,
		"window_end_ms", s.WindowEndMs,
		"spawned", s.Spawned,
		"caught", s.Caught,
		"lost", s.Lost,
		"seized", s.Seized,
		"released", s.Released,
		"waves", s.Waves,
		"catch_rate", s.CatchRate,
		"score", s.Score,
		"lives", s.Lives,
		"pollution", s.Pollution,
		"in_wave", s.InWave,
		"force_mean", s.ForceMean,
		"force_p90", s.ForceP90,
	)
}
