package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/rivercleanup/config"
)

type fakeTrash struct {
	held, released, discarded bool
	x, y                      float64
}

func (f *fakeTrash) Hold()                 { f.held = true }
func (f *fakeTrash) MoveTo(cx, cy float64) { f.x, f.y = cx, cy }
func (f *fakeTrash) Release()              { f.held = false; f.released = true }
func (f *fakeTrash) Discard()              { f.discarded = true }

type fakeCaptor struct{ x, y float64 }

func (f *fakeCaptor) MouthPosition() (float64, float64) { return f.x, f.y }

var space = Controls{Space: true}

// startDive charges for the given ticks and releases, leaving the pegador
// descending.
func startDive(p *Pegador, ticks int) {
	p.Update(0, space)
	for i := 0; i < ticks; i++ {
		p.Update(0, space)
	}
	p.Update(0, Controls{})
}

func TestDiveTarget(t *testing.T) {
	tests := []struct {
		name  string
		force float64
		want  float64
	}{
		{"no force stays at bottom", 0, 450},
		{"half force", 50, 450 - 0.125*350},
		{"full force reaches top", 100, 100},
		{"over max clamps", 150, 100},
		{"negative clamps", -10, 450},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiveTarget(tt.force, 100, 100, 450)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DiveTarget(%v) = %v, want %v", tt.force, got, tt.want)
			}
		})
	}
}

func TestDiveTargetMonotonic(t *testing.T) {
	prev := DiveTarget(0, 100, 100, 450)
	for f := 1.0; f <= 100; f++ {
		got := DiveTarget(f, 100, 100, 450)
		if got > prev {
			t.Fatalf("DiveTarget(%v) = %v deeper than DiveTarget(%v) = %v", f, got, f-1, prev)
		}
		prev = got
	}
}

func TestPegadorChargeAndRelease(t *testing.T) {
	cfg := config.Default()
	p := NewPegador(cfg, 400, 20)

	p.Update(0, space)
	if p.State() != PegadorCharging {
		t.Fatalf("state = %v, want charging", p.State())
	}
	if p.Force() != 0 {
		t.Errorf("force on entering charge = %v, want 0", p.Force())
	}
	if p.Facing() != FacingSide {
		t.Error("Facing() while charging should be side")
	}

	for i := 0; i < 25; i++ {
		p.Update(0, space)
	}
	if p.ForcePercent() != 50 {
		t.Errorf("ForcePercent() = %v, want 50", p.ForcePercent())
	}

	p.Update(0, Controls{})
	if p.State() != PegadorDescending {
		t.Fatalf("state after release = %v, want descending", p.State())
	}
	if want := 406.25; math.Abs(p.Target()-want) > 1e-9 {
		t.Errorf("Target() = %v, want %v", p.Target(), want)
	}
}

func TestPegadorForceSaturates(t *testing.T) {
	cfg := config.Default()
	p := NewPegador(cfg, 400, 20)
	for i := 0; i < 200; i++ {
		p.Update(0, space)
	}
	if p.Force() != cfg.Pegador.MaxForce {
		t.Errorf("Force() = %v, want %v", p.Force(), cfg.Pegador.MaxForce)
	}
}

func TestPegadorFullDiveCycle(t *testing.T) {
	cfg := config.Default()
	p := NewPegador(cfg, 400, 20)
	startDive(p, 25)

	ticks := 0
	for p.State() == PegadorDescending {
		p.Update(0, Controls{})
		ticks++
		if ticks > 1000 {
			t.Fatal("dive never turned around")
		}
	}
	if p.State() != PegadorAscending {
		t.Fatalf("state = %v, want ascending", p.State())
	}
	if _, top := p.Position(); top > p.Target() {
		t.Errorf("turned around at %v above target %v", top, p.Target())
	}

	for p.State() == PegadorAscending {
		p.Update(0, Controls{})
	}
	if p.State() != PegadorIdle {
		t.Errorf("empty net should return to idle, got %v", p.State())
	}
	if _, top := p.Position(); top != cfg.Pegador.MarginY {
		t.Errorf("top = %v, want margin %v", top, cfg.Pegador.MarginY)
	}
	if p.Force() != 0 {
		t.Errorf("Force() = %v after returning, want 0", p.Force())
	}
}

func TestPegadorHorizontalMovement(t *testing.T) {
	cfg := config.Default()

	t.Run("clamped left", func(t *testing.T) {
		p := NewPegador(cfg, 30, 20)
		for i := 0; i < 10; i++ {
			p.Update(0, Controls{Left: true})
		}
		if x, _ := p.Position(); x != 20 {
			t.Errorf("x = %v, want 20", x)
		}
	})

	t.Run("clamped right", func(t *testing.T) {
		p := NewPegador(cfg, 770, 20)
		for i := 0; i < 10; i++ {
			p.Update(0, Controls{Right: true})
		}
		if x, _ := p.Position(); x != 780 {
			t.Errorf("x = %v, want 780", x)
		}
	})

	t.Run("no horizontal movement during dive", func(t *testing.T) {
		p := NewPegador(cfg, 400, 20)
		startDive(p, 10)
		p.Update(0, Controls{Left: true, Space: true})
		if x, _ := p.Position(); x != 400 {
			t.Errorf("x = %v, want 400", x)
		}
	})
}

func TestPegadorCaptureTrash(t *testing.T) {
	cfg := config.Default()

	t.Run("rejected outside descent", func(t *testing.T) {
		p := NewPegador(cfg, 400, 20)
		if p.CaptureTrash(&fakeTrash{}) {
			t.Error("capture while idle succeeded")
		}
		p.Update(0, space)
		if p.CaptureTrash(&fakeTrash{}) {
			t.Error("capture while charging succeeded")
		}
	})

	t.Run("one item per dive", func(t *testing.T) {
		p := NewPegador(cfg, 400, 20)
		startDive(p, 25)
		first := &fakeTrash{}
		if !p.CaptureTrash(first) {
			t.Fatal("capture while descending failed")
		}
		if !first.held {
			t.Error("captured item not held")
		}
		if p.State() != PegadorAscending {
			t.Errorf("state = %v, want ascending after capture", p.State())
		}
		if p.CaptureTrash(&fakeTrash{}) {
			t.Error("second capture succeeded")
		}
	})

	t.Run("shown then discarded", func(t *testing.T) {
		p := NewPegador(cfg, 400, 20)
		startDive(p, 25)
		p.Update(0, Controls{})
		item := &fakeTrash{}
		p.CaptureTrash(item)

		now := int64(0)
		for p.State() == PegadorAscending {
			now += 16
			p.Update(now, Controls{})
		}
		if p.State() != PegadorShowingCatch {
			t.Fatalf("state = %v, want showing catch", p.State())
		}
		ax, ay := p.NetAnchor()
		if item.x != ax || item.y != ay {
			t.Errorf("item at (%v, %v), want net anchor (%v, %v)", item.x, item.y, ax, ay)
		}

		shownAt := now
		for p.State() == PegadorShowingCatch {
			now += 16
			p.Update(now, Controls{})
		}
		if elapsed := now - shownAt; elapsed < cfg.Pegador.ShowCatchMs {
			t.Errorf("showed for %dms, want at least %dms", elapsed, cfg.Pegador.ShowCatchMs)
		}
		if !item.discarded {
			t.Error("item not discarded after showing")
		}
		if p.State() != PegadorIdle || p.HasTrash() {
			t.Errorf("state = %v, HasTrash = %v; want idle with empty net", p.State(), p.HasTrash())
		}
	})
}

func TestPegadorSeize(t *testing.T) {
	cfg := config.Default()

	t.Run("not seizable at margin", func(t *testing.T) {
		p := NewPegador(cfg, 400, 20)
		if p.Seize(&fakeCaptor{}) {
			t.Error("seize while idle succeeded")
		}
	})

	t.Run("follows mouth with fixed offset", func(t *testing.T) {
		p := NewPegador(cfg, 400, 20)
		startDive(p, 50)
		p.Update(0, Controls{})
		x0, top0 := p.Position()

		c := &fakeCaptor{x: 380, y: 300}
		if !p.Seize(c) {
			t.Fatal("Seize failed while descending")
		}
		dx, dy := p.CaptureOffset()
		if dx != x0-380 || dy != top0-300 {
			t.Errorf("offset = (%v, %v), want (%v, %v)", dx, dy, x0-380, top0-300)
		}

		c.x, c.y = 500, 250
		p.Update(16, Controls{Left: true, Space: true})
		x, top := p.Position()
		if x != 500+dx || top != 250+dy {
			t.Errorf("position = (%v, %v), want (%v, %v)", x, top, 500+dx, 250+dy)
		}
		if p.State() != PegadorCaught {
			t.Errorf("state = %v, want caught", p.State())
		}
	})

	t.Run("held item released", func(t *testing.T) {
		p := NewPegador(cfg, 400, 20)
		startDive(p, 50)
		item := &fakeTrash{}
		p.CaptureTrash(item)
		if !p.Seize(&fakeCaptor{x: 400, y: 300}) {
			t.Fatal("Seize failed while ascending")
		}
		if !item.released || item.held || p.HasTrash() {
			t.Error("item should fall back into the river on seizure")
		}
	})
}

func TestPegadorForceInvariant(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(7))
	p := NewPegador(cfg, 400, 20)

	now := int64(0)
	for i := 0; i < 20000; i++ {
		now += 16
		in := Controls{Left: rng.Intn(3) == 0, Right: rng.Intn(3) == 0, Space: rng.Intn(2) == 0}
		p.Update(now, in)
		if p.State() == PegadorDescending && rng.Intn(20) == 0 {
			p.CaptureTrash(&fakeTrash{})
		}

		if f := p.Force(); f < 0 || f > cfg.Pegador.MaxForce {
			t.Fatalf("tick %d: force %v out of range", i, f)
		}
		if p.State() == PegadorIdle && p.Force() != 0 {
			t.Fatalf("tick %d: idle with force %v", i, p.Force())
		}
		if x, _ := p.Position(); x < 20 || x > cfg.Derived.ScreenW-20 {
			t.Fatalf("tick %d: x %v outside screen", i, x)
		}
		if _, top := p.Position(); top > cfg.Pegador.MarginY {
			t.Fatalf("tick %d: top %v below margin", i, top)
		}
	}
}
