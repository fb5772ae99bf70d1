package systems

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/rivercleanup/config"
)

// SpawnManager decides when new trash enters the river.
//
// Three behaviours are layered: nothing spawns during the warm-up, then the
// spawn interval shrinks by a fixed step at fixed intervals down to a floor,
// and independently of that curve random waves temporarily override the
// interval with a much shorter one. All timers compare absolute clock values
// so querying every tick never drifts.
type SpawnManager struct {
	cfg config.SpawnConfig
	rng *rand.Rand

	startMs     int64
	lastSpawnMs int64
	lastAccelMs int64

	rate       int64
	warmupDone bool

	inWave      bool
	waveStartMs int64
	nextWaveMs  int64
}

// NewSpawnManager creates a spawn manager whose clock starts at now.
func NewSpawnManager(cfg *config.Config, rng *rand.Rand, now int64) *SpawnManager {
	s := &SpawnManager{cfg: cfg.Spawn, rng: rng}
	s.Reset(now)
	slog.Debug("spawn manager initialized",
		"warmup_ms", s.cfg.WarmupMs,
		"initial_rate_ms", s.cfg.InitialRateMs,
		"first_wave_in_ms", s.nextWaveMs-now,
	)
	return s
}

// Reset restores the initial cadence with the clock starting at now.
func (s *SpawnManager) Reset(now int64) {
	s.startMs = now
	s.lastSpawnMs = now
	s.lastAccelMs = now
	s.rate = s.cfg.InitialRateMs
	s.warmupDone = false
	s.inWave = false
	s.waveStartMs = 0
	s.nextWaveMs = now + s.waveDelay()
}

// Update advances all timers and reports whether a new item should spawn.
func (s *SpawnManager) Update(now int64) bool {
	if !s.warmupDone {
		if now-s.startMs < s.cfg.WarmupMs {
			return false
		}
		s.warmupDone = true
		slog.Debug("spawn warm-up complete", "at_ms", now-s.startMs)
	}

	if now-s.lastAccelMs >= s.cfg.AccelerationIntervalMs {
		s.lastAccelMs = now
		old := s.rate
		s.rate = max(s.cfg.MinRateMs, s.rate-s.cfg.AccelerationAmountMs)
		if old != s.rate {
			slog.Debug("spawn rate accelerated", "from_ms", old, "to_ms", s.rate)
		}
	}

	if !s.inWave && now >= s.nextWaveMs {
		s.inWave = true
		s.waveStartMs = now
		slog.Info("trash wave started", "duration_ms", s.cfg.WaveDurationMs, "rate_ms", s.cfg.WaveRateMs)
	}
	if s.inWave && now-s.waveStartMs >= s.cfg.WaveDurationMs {
		s.inWave = false
		delay := s.waveDelay()
		s.nextWaveMs = now + delay
		slog.Info("trash wave ended", "next_in_ms", delay)
	}

	if now-s.lastSpawnMs >= s.CurrentRate() {
		s.lastSpawnMs = now
		return true
	}
	return false
}

// InWave reports whether a wave is in progress.
func (s *SpawnManager) InWave() bool {
	return s.inWave
}

// WarmupDone reports whether spawning has been enabled.
func (s *SpawnManager) WarmupDone() bool {
	return s.warmupDone
}

// CurrentRate returns the effective spawn interval in milliseconds.
func (s *SpawnManager) CurrentRate() int64 {
	if s.inWave {
		return s.cfg.WaveRateMs
	}
	return s.rate
}

// waveDelay picks the time until the next wave.
func (s *SpawnManager) waveDelay() int64 {
	return randRange(s.rng, s.cfg.WaveIntervalMinMs, s.cfg.WaveIntervalMaxMs)
}

// randRange returns a uniformly distributed value in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Int63n(hi-lo+1)
}

// randUniform returns a uniformly distributed value in [lo, hi).
func randUniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
