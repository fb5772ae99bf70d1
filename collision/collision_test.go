package collision

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", Rect{0, 0, 10, 10}, true},
		{"inside", Rect{2, 2, 3, 3}, true},
		{"partial", Rect{5, 5, 10, 10}, true},
		{"touching right edge", Rect{10, 0, 5, 5}, false},
		{"touching bottom edge", Rect{0, 10, 5, 5}, false},
		{"far away", Rect{50, 50, 5, 5}, false},
		{"negative side", Rect{-5, -5, 6, 6}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("symmetric Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestMaskFromAlpha(t *testing.T) {
	alpha := []uint8{
		0, 255, 0,
		10, 200, 17,
	}
	m := MaskFromAlpha(3, 2, alpha, 16)

	want := [][]bool{
		{false, true, false},
		{false, true, true},
	}
	for y, row := range want {
		for x, w := range row {
			if got := m.Get(x, y); got != w {
				t.Errorf("Get(%d,%d) = %v, want %v", x, y, got, w)
			}
		}
	}
	if m.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Count())
	}
}

func TestMaskWideRows(t *testing.T) {
	m := NewMask(130, 2)
	m.Set(0, 0)
	m.Set(64, 0)
	m.Set(129, 1)
	m.Set(130, 1) // out of range, ignored

	if !m.Get(64, 0) || !m.Get(129, 1) || !m.Get(0, 0) {
		t.Error("expected set pixels to read back opaque")
	}
	if m.Get(65, 0) || m.Get(128, 1) {
		t.Error("unexpected opaque pixel")
	}
	if m.Count() != 3 {
		t.Errorf("Count() = %d, want 3", m.Count())
	}
}

func TestFlipH(t *testing.T) {
	m := NewMask(4, 1)
	m.Set(0, 0)
	m.Set(1, 0)

	f := m.FlipH()
	for x, want := range []bool{false, false, true, true} {
		if got := f.Get(x, 0); got != want {
			t.Errorf("flipped Get(%d,0) = %v, want %v", x, got, want)
		}
	}
	if m.Get(3, 0) {
		t.Error("FlipH mutated the source mask")
	}
}

// ring returns a mask with only its outer border opaque.
func ring(w, h int) *Mask {
	m := NewMask(w, h)
	for x := 0; x < w; x++ {
		m.Set(x, 0)
		m.Set(x, h-1)
	}
	for y := 0; y < h; y++ {
		m.Set(0, y)
		m.Set(w-1, y)
	}
	return m
}

func TestCrop(t *testing.T) {
	m := NewMask(4, 3)
	m.Set(1, 0)
	m.Set(2, 2)
	m.Set(3, 1)

	c := m.Crop(1, 0, 4, 2)
	if c.Width() != 4 || c.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", c.Width(), c.Height())
	}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{1, 1, false},
		{3, 0, false}, // past the source edge
	}
	for _, tt := range tests {
		if got := c.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("Crop Get(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if c.Count() != 2 {
		t.Errorf("Count() = %d, want 2", c.Count())
	}
}

func TestOverlap(t *testing.T) {
	square := Solid(4, 4)
	hollow := ring(20, 20)

	tests := []struct {
		name   string
		a      *Mask
		ax, ay int
		b      *Mask
		bx, by int
		want   bool
	}{
		{"solid squares overlapping", square, 0, 0, square, 2, 2, true},
		{"solid squares adjacent", square, 0, 0, square, 4, 0, false},
		{"inside hollow ring", hollow, 0, 0, square, 8, 8, false},
		{"on ring border", hollow, 0, 0, square, 17, 8, true},
		{"ring on negative offset", square, 8, 8, hollow, -11, 0, true},
		{"disjoint", square, 0, 0, square, 100, 100, false},
		{"nil mask", nil, 0, 0, square, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlap(tt.a, tt.ax, tt.ay, tt.b, tt.bx, tt.by)
			if got != tt.want {
				t.Errorf("Overlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHitRejectsTransparentPadding(t *testing.T) {
	// Bounding boxes overlap but only transparent pixels meet
	hollow := Body{X: 0, Y: 0, Mask: ring(20, 20)}
	inner := Body{X: 5.5, Y: 5.9, Mask: Solid(6, 6)}

	if !hollow.Rect().Overlaps(inner.Rect()) {
		t.Fatal("test setup: bounding boxes should overlap")
	}
	if Hit(hollow, inner) {
		t.Error("Hit = true, want false for transparent padding")
	}

	inner.X = 16
	if !Hit(hollow, inner) {
		t.Error("Hit = false, want true once opaque pixels meet")
	}
}
