package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rivercleanup/components"
	"github.com/pthm-cable/rivercleanup/config"
)

func newTrashWorld() (*ecs.World, *ecs.Map4[components.Position, components.Size, components.Drift, components.Trash]) {
	w := ecs.NewWorld()
	return w, ecs.NewMap4[components.Position, components.Size, components.Drift, components.Trash](w)
}

func TestDriftLostAfterCrossing(t *testing.T) {
	cfg := config.Default()
	w, mapper := newTrashWorld()
	ds := NewDriftSystem(w, cfg)
	pos := ecs.NewMap1[components.Position](w)

	x := SpawnX(40, cfg.River.FlowSpeed, cfg.Derived.ScreenW)
	e := mapper.NewEntity(
		&components.Position{X: x, Y: 200},
		&components.Size{W: 40, H: 40},
		&components.Drift{},
		&components.Trash{Category: "plastic"},
	)

	// 800px at 2px per tick
	for i := 0; i < 399; i++ {
		ds.Update()
		if lost := ds.Lost(); len(lost) != 0 {
			t.Fatalf("tick %d: lost %d items, want 0 (x=%v)", i+1, len(lost), pos.Get(e).X)
		}
	}
	ds.Update()
	lost := ds.Lost()
	if len(lost) != 1 || lost[0] != e {
		t.Fatalf("after 400 ticks Lost() = %v, want [%v]", lost, e)
	}
	if got := pos.Get(e).X; got != 800 {
		t.Errorf("x = %v, want 800", got)
	}
}

func TestDriftBounce(t *testing.T) {
	cfg := config.Default()
	w, mapper := newTrashWorld()
	ds := NewDriftSystem(w, cfg)

	tests := []struct {
		name    string
		y, velY float64
		wantY   float64
		wantVel float64
	}{
		{"bottom bound", 405, 10, 410, -10},
		{"top bound", 105, -10, 100, 10},
		{"inside band", 200, 0.5, 200.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mapper.NewEntity(
				&components.Position{X: 100, Y: tt.y},
				&components.Size{W: 40, H: 40},
				&components.Drift{VelY: tt.velY},
				&components.Trash{Category: "glass"},
			)
			ds.Update()
			p, _, d, _ := mapper.Get(e)
			if p.Y != tt.wantY || d.VelY != tt.wantVel {
				t.Errorf("y, vel = %v, %v; want %v, %v", p.Y, d.VelY, tt.wantY, tt.wantVel)
			}
			w.RemoveEntity(e)
		})
	}
}

func TestDriftSkipsCaptured(t *testing.T) {
	cfg := config.Default()
	w, mapper := newTrashWorld()
	ds := NewDriftSystem(w, cfg)

	e := mapper.NewEntity(
		&components.Position{X: 900, Y: 200},
		&components.Size{W: 40, H: 40},
		&components.Drift{VelY: 1},
		&components.Trash{Category: "metal", Captured: true},
	)
	ds.Update()
	p, _, _, _ := mapper.Get(e)
	if p.X != 900 || p.Y != 200 {
		t.Errorf("captured item moved to (%v, %v)", p.X, p.Y)
	}
	if lost := ds.Lost(); len(lost) != 0 {
		t.Errorf("captured item reported lost")
	}
}

func TestDownstreamAndSpawnX(t *testing.T) {
	tests := []struct {
		name     string
		flow     float64
		x        float64
		wantLost bool
		wantX    float64
	}{
		{"right-drifting inside", -2, 799, false, 0},
		{"right-drifting gone", -2, 800, true, 0},
		{"left-drifting inside", 2, -39, false, 760},
		{"left-drifting gone", 2, -40, true, 760},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Downstream(tt.x, 40, tt.flow, 800); got != tt.wantLost {
				t.Errorf("Downstream(%v) = %v, want %v", tt.x, got, tt.wantLost)
			}
			if got := SpawnX(40, tt.flow, 800); got != tt.wantX {
				t.Errorf("SpawnX() = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestSplashFrames(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Splash](w)
	ss := NewSplashSystem(w, cfg)

	e := mapper.NewEntity(&components.Position{X: 10, Y: 10}, &components.Splash{StartMs: 1000})

	frameMs := cfg.Splash.FrameMs
	for i := 0; i < cfg.Splash.Frames; i++ {
		now := 1000 + int64(i)*frameMs
		if done := ss.Update(now); len(done) != 0 {
			t.Fatalf("frame %d finished early", i)
		}
		if _, s := mapper.Get(e); s.Frame != i {
			t.Errorf("at %dms frame = %d, want %d", now, s.Frame, i)
		}
	}
	done := ss.Update(1000 + int64(cfg.Splash.Frames)*frameMs)
	if len(done) != 1 || done[0] != e {
		t.Errorf("Update after last frame = %v, want [%v]", done, e)
	}
}

func TestPollutionMeter(t *testing.T) {
	cfg := config.Default()
	p := NewPollution(cfg)
	if p.Points() != 50 {
		t.Fatalf("initial points = %d, want 50", p.Points())
	}
	if p.Band() != PollutionMedium {
		t.Errorf("initial band = %v, want medium", p.Band())
	}

	for i := 0; i < 20; i++ {
		p.Catch()
	}
	if p.Points() != 0 || p.Band() != PollutionLow {
		t.Errorf("after catches points = %d band = %v, want 0 low", p.Points(), p.Band())
	}

	for i := 0; i < 20; i++ {
		p.Lose()
	}
	if p.Points() != 100 || !p.Full() || p.Band() != PollutionHigh {
		t.Errorf("after losses points = %d full = %v band = %v", p.Points(), p.Full(), p.Band())
	}
	if p.Percent() != 100 {
		t.Errorf("Percent() = %v, want 100", p.Percent())
	}

	p.Reset()
	if p.Points() != 50 {
		t.Errorf("after Reset points = %d, want 50", p.Points())
	}
}

func TestLives(t *testing.T) {
	l := NewLives(3)
	for want := 2; want >= 0; want-- {
		if got := l.Lose(); got != want {
			t.Errorf("Lose() = %d, want %d", got, want)
		}
	}
	if !l.Exhausted() {
		t.Error("Exhausted() = false with no lives left")
	}
	if l.Lose() != 0 {
		t.Error("Lose() below zero")
	}
	l.Reset()
	if l.Remaining() != 3 || l.Exhausted() {
		t.Errorf("after Reset remaining = %d", l.Remaining())
	}
}
