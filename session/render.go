package session

import "github.com/pthm-cable/rivercleanup/systems"

// RenderList returns the sprites to draw for the current tick, back to front.
// Fully submerged crocodiles are left out. The slice is reused by the next
// Update.
func (s *Session) RenderList() []RenderItem {
	return s.render
}

// buildRenderList snapshots every visible entity.
func (s *Session) buildRenderList() {
	items := s.render[:0]

	query := s.trashFilter.Query()
	for query.Next() {
		pos, size, trash := query.Get()
		items = append(items, RenderItem{
			Kind:     RenderTrash,
			X:        pos.X,
			Y:        pos.Y,
			W:        size.W,
			H:        size.H,
			Category: trash.Category,
		})
	}

	frameSize := float64(s.cfg.Splash.FrameSize)
	splashes := s.splashFilter.Query()
	for splashes.Next() {
		pos, splash := splashes.Get()
		items = append(items, RenderItem{
			Kind:  RenderSplash,
			X:     pos.X,
			Y:     pos.Y,
			W:     frameSize,
			H:     frameSize,
			Frame: splash.Frame,
		})
	}

	for _, c := range s.crocodiles {
		if c.Level().Hidden() {
			continue
		}
		x, y := c.Position()
		w, h := c.Size()
		items = append(items, RenderItem{
			Kind:  RenderCrocodile,
			X:     x,
			Y:     y,
			W:     w,
			H:     h,
			Level: c.Level(),
			Frame: c.AnimFrame(),
			FlipH: c.Direction() == systems.SwimLeft,
		})
	}

	for _, c := range s.crocodiles {
		if p := c.Carried(); p != nil && p != s.pegador && !c.Level().Hidden() {
			items = append(items, s.pegadorItem(p))
		}
	}
	if s.pegador != nil {
		items = append(items, s.pegadorItem(s.pegador))
	}

	s.render = items
}

func (s *Session) pegadorItem(p *systems.Pegador) RenderItem {
	mask := s.pegadorMask(p)
	cx, top := p.Position()
	w, h := float64(mask.Width()), float64(mask.Height())
	return RenderItem{
		Kind:   RenderPegador,
		X:      cx - w/2,
		Y:      top,
		W:      w,
		H:      h,
		Facing: p.Facing(),
	}
}
