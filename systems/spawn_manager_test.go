package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/rivercleanup/config"
)

func spawnConfig(mutate func(s *config.SpawnConfig)) *config.Config {
	cfg := config.Default()
	mutate(&cfg.Spawn)
	return cfg
}

func TestSpawnManagerWarmup(t *testing.T) {
	cfg := spawnConfig(func(s *config.SpawnConfig) {
		s.WarmupMs = 2000
		s.InitialRateMs = 2000
	})
	sm := NewSpawnManager(cfg, rand.New(rand.NewSource(1)), 0)

	for now := int64(0); now < 2000; now += 16 {
		if sm.Update(now) {
			t.Fatalf("Update(%d) = true during warm-up", now)
		}
	}
	if sm.WarmupDone() {
		t.Error("WarmupDone() = true before 2000ms")
	}

	if !sm.Update(2000) {
		t.Error("Update(2000) = false, want first spawn once warm-up ends")
	}
	if !sm.WarmupDone() {
		t.Error("WarmupDone() = false after 2000ms")
	}

	// Regular interval afterwards
	if sm.Update(2016) {
		t.Error("Update(2016) = true, want false right after a spawn")
	}
	if !sm.Update(4000) {
		t.Error("Update(4000) = false, want spawn after one interval")
	}
}

func TestSpawnManagerAtMostOncePerInterval(t *testing.T) {
	cfg := spawnConfig(func(s *config.SpawnConfig) {
		s.WarmupMs = 0
		s.InitialRateMs = 1000
		s.MinRateMs = 1000
		s.WaveIntervalMinMs = 1 << 40
		s.WaveIntervalMaxMs = 1 << 40
	})
	sm := NewSpawnManager(cfg, rand.New(rand.NewSource(1)), 0)

	spawns := 0
	for now := int64(0); now <= 10000; now++ {
		if sm.Update(now) {
			spawns++
		}
	}
	if spawns != 10 {
		t.Errorf("spawns = %d, want 10", spawns)
	}
}

func TestSpawnManagerAcceleration(t *testing.T) {
	cfg := spawnConfig(func(s *config.SpawnConfig) {
		s.WarmupMs = 0
		s.InitialRateMs = 2000
		s.MinRateMs = 1700
		s.AccelerationIntervalMs = 10000
		s.AccelerationAmountMs = 100
		s.WaveIntervalMinMs = 1 << 40
		s.WaveIntervalMaxMs = 1 << 40
	})
	sm := NewSpawnManager(cfg, rand.New(rand.NewSource(1)), 0)

	want := []int64{1900, 1800, 1700, 1700}
	for i, w := range want {
		sm.Update(int64(i+1) * 10000)
		if got := sm.CurrentRate(); got != w {
			t.Errorf("after %d intervals CurrentRate() = %d, want %d", i+1, got, w)
		}
	}
}

func TestSpawnManagerWave(t *testing.T) {
	cfg := spawnConfig(func(s *config.SpawnConfig) {
		s.WarmupMs = 0
		s.InitialRateMs = 2000
		s.MinRateMs = 2000
		s.AccelerationIntervalMs = 1 << 40
		s.WaveIntervalMinMs = 5000
		s.WaveIntervalMaxMs = 5000
		s.WaveDurationMs = 1000
		s.WaveRateMs = 100
	})
	sm := NewSpawnManager(cfg, rand.New(rand.NewSource(1)), 0)

	if sm.Update(0) {
		t.Error("Update(0) = true, want false")
	}

	if !sm.Update(5000) {
		t.Error("Update(5000) = false, want spawn at wave start")
	}
	if !sm.InWave() {
		t.Fatal("InWave() = false at 5000ms")
	}
	if got := sm.CurrentRate(); got != 100 {
		t.Errorf("CurrentRate() in wave = %d, want 100", got)
	}
	if sm.Update(5050) {
		t.Error("Update(5050) = true, want false inside wave interval")
	}
	if !sm.Update(5100) {
		t.Error("Update(5100) = false, want wave-rate spawn")
	}

	if sm.Update(6000) {
		t.Error("Update(6000) = true, want false after wave ends")
	}
	if sm.InWave() {
		t.Error("InWave() = true after wave duration")
	}
	if got := sm.CurrentRate(); got != 2000 {
		t.Errorf("CurrentRate() after wave = %d, want 2000", got)
	}

	// Next wave is scheduled from the end of the previous one
	sm.Update(10999)
	if sm.InWave() {
		t.Error("InWave() = true before next scheduled wave")
	}
	sm.Update(11000)
	if !sm.InWave() {
		t.Error("InWave() = false at next scheduled wave")
	}
}

func TestSpawnManagerReset(t *testing.T) {
	cfg := spawnConfig(func(s *config.SpawnConfig) {
		s.WarmupMs = 1000
		s.AccelerationIntervalMs = 100
	})
	sm := NewSpawnManager(cfg, rand.New(rand.NewSource(1)), 0)
	for now := int64(0); now < 5000; now += 16 {
		sm.Update(now)
	}
	if sm.CurrentRate() == cfg.Spawn.InitialRateMs {
		t.Fatal("test setup: expected rate to have accelerated")
	}

	sm.Reset(5000)
	if sm.CurrentRate() != cfg.Spawn.InitialRateMs {
		t.Errorf("CurrentRate() after Reset = %d, want %d", sm.CurrentRate(), cfg.Spawn.InitialRateMs)
	}
	if sm.Update(5500) {
		t.Error("Update during new warm-up = true, want false")
	}
}
