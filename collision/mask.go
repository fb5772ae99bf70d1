package collision

import "math/bits"

// Mask is a row-major bitmap of opaque pixels.
type Mask struct {
	w, h   int
	stride int // words per row
	words  []uint64
}

// NewMask creates an empty (fully transparent) mask.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	stride := (w + 63) / 64
	return &Mask{w: w, h: h, stride: stride, words: make([]uint64, stride*h)}
}

// Solid creates a fully opaque mask, used for placeholder sprites.
func Solid(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y)
		}
	}
	return m
}

// MaskFromAlpha builds a mask from a row-major alpha channel. A pixel is
// opaque when its alpha is strictly greater than threshold.
func MaskFromAlpha(w, h int, alpha []uint8, threshold uint8) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if i < len(alpha) && alpha[i] > threshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks a pixel opaque. Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.words[y*m.stride+x/64] |= 1 << uint(x%64)
}

// Get reports whether a pixel is opaque. Out-of-range pixels are transparent.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.words[y*m.stride+x/64]&(1<<uint(x%64)) != 0
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// FlipH returns a horizontally mirrored copy.
func (m *Mask) FlipH() *Mask {
	out := NewMask(m.w, m.h)
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.Get(x, y) {
				out.Set(m.w-1-x, y)
			}
		}
	}
	return out
}

// Crop returns the w×h region whose top-left corner is (x, y). Pixels that
// fall outside m are transparent.
func (m *Mask) Crop(x, y, w, h int) *Mask {
	out := NewMask(w, h)
	for dy := 0; dy < out.h; dy++ {
		for dx := 0; dx < out.w; dx++ {
			if m.Get(x+dx, y+dy) {
				out.Set(dx, dy)
			}
		}
	}
	return out
}
