package session

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rivercleanup/collision"
	"github.com/pthm-cable/rivercleanup/components"
	"github.com/pthm-cable/rivercleanup/systems"
)

// handleCrocodileEvents turns a crocodile's queued events into effects.
func (s *Session) handleCrocodileEvents(c *systems.Crocodile, now int64) {
	for _, e := range c.DrainEvents() {
		switch e.Kind {
		case systems.EventSplash:
			s.addSplash(e.X, e.Y, now)
			s.play(SoundSplash)
		case systems.EventChomp:
			s.play(SoundChomp)
		case systems.EventReleased:
			if e.Pegador != nil && e.Pegador == s.pegador {
				s.pegador = nil
			}
			s.notify(Event{Kind: EventReleased, X: e.X, Y: e.Y})
			slog.Debug("crocodile released pegador", "x", e.X, "y", e.Y)
		}
	}
}

// checkCrocodileCollision lets the first touching crocodile grab a diving
// pegador. Only one crocodile can carry at a time, so a fresh pegador cannot
// be seized while an orphan is still being carried off.
func (s *Session) checkCrocodileCollision(now int64) {
	p := s.pegador
	if p == nil || !p.Seizable() || s.inCooldown || s.anyCarrying() {
		return
	}
	body := s.pegadorBody(p)
	for _, c := range s.crocodiles {
		if !c.Active() {
			continue
		}
		if !collision.Hit(body, s.crocodileBody(c)) {
			continue
		}

		force := p.ForcePercent()
		if !p.Seize(c) || !c.StartCarrying(p) {
			return
		}
		remaining := s.lives.Lose()
		s.inCooldown = true
		s.cooldownUntil = now + s.cfg.Pegador.RespawnCooldownMs
		s.handleCrocodileEvents(c, now)

		x, y := p.Position()
		s.notify(Event{Kind: EventSeized, X: x, Y: y, Force: force})
		slog.Info("pegador seized", "x", x, "y", y, "lives", remaining)
		return
	}
}

// checkTrashCollision puts the first touching item in a diving, empty net.
func (s *Session) checkTrashCollision(now int64) {
	p := s.pegador
	if p == nil || p.State() != systems.PegadorDescending || p.HasTrash() {
		return
	}
	body := s.pegadorBody(p)

	var (
		hit      ecs.Entity
		found    bool
		category string
	)
	query := s.trashFilter.Query()
	for query.Next() {
		pos, _, trash := query.Get()
		if trash.Captured {
			continue
		}
		mask := s.sprites.Trash[trash.Category]
		if collision.Hit(body, collision.Body{X: pos.X, Y: pos.Y, Mask: mask}) {
			hit = query.Entity()
			category = trash.Category
			found = true
			query.Close()
			break
		}
	}
	if !found {
		return
	}

	force := p.ForcePercent()
	if !p.CaptureTrash(s.handle(hit)) {
		return
	}

	s.score += s.cfg.Score.PointsPerCatch
	s.pollution.Catch()

	pos := s.posMap.Get(hit)
	size := s.sizeMap.Get(hit)
	cx, cy := pos.X+size.W/2, pos.Y+size.H/2
	s.addSplash(cx, cy, now)
	s.play(SoundCatch)
	s.notify(Event{Kind: EventCaught, Category: category, X: cx, Y: cy, Force: force})

	if !s.unlocked && s.score >= s.cfg.Crocodile.SecondUnlockScore {
		s.unlocked = true
		s.notify(Event{Kind: EventUnlocked})
		slog.Info("second crocodile unlocked", "score", s.score)
	}
}

// cullLostTrash removes items that escaped downstream.
func (s *Session) cullLostTrash(now int64) {
	for _, e := range s.drift.Lost() {
		pos := s.posMap.Get(e)
		trash := s.trashMap.Get(e)
		x, y, category := pos.X, pos.Y, trash.Category

		s.world.RemoveEntity(e)
		s.pollution.Lose()
		s.play(SoundLost)
		s.notify(Event{Kind: EventLost, Category: category, X: x, Y: y})
	}
}

// cullSubmergedCarriers destroys a carried pegador when its crocodile dives
// out of sight.
func (s *Session) cullSubmergedCarriers() {
	for _, c := range s.crocodiles {
		if !c.Carrying() || !c.Level().Hidden() {
			continue
		}
		p := c.DropCarried()
		if p == s.pegador {
			s.pegador = nil
		}
		slog.Debug("carried pegador lost under water")
	}
}

// checkGameOver ends the game when the river is fully polluted or no lives
// are left.
func (s *Session) checkGameOver(now int64) {
	if !s.pollution.Full() && !s.lives.Exhausted() {
		return
	}
	s.gameOver = true
	s.finalScore = s.score
	s.play(SoundGameOver)
	s.notify(Event{Kind: EventGameOver})
	slog.Info("game over",
		"score", s.score,
		"pollution_full", s.pollution.Full(),
		"lives", s.lives.Remaining(),
		"at_ms", now,
	)
}

// maybeSpawnSecondCrocodile adds the second crocodile once it has been
// unlocked and the river is clean enough.
func (s *Session) maybeSpawnSecondCrocodile(now int64) {
	if !s.unlocked || s.secondSpawned {
		return
	}
	if s.pollution.Percent() >= s.cfg.Crocodile.SecondMaxPollution {
		return
	}
	s.crocodiles = append(s.crocodiles, s.newSecondCrocodile(now))
	s.secondSpawned = true
	slog.Info("second crocodile joined", "pollution", s.pollution.Percent())
}

// maybeSpawnTrash asks the spawn manager for a new item.
func (s *Session) maybeSpawnTrash(now int64) {
	spawn := s.spawner.Update(now)

	inWave := s.spawner.InWave()
	if inWave && !s.wasInWave {
		s.play(SoundWave)
		s.notify(Event{Kind: EventWave})
	}
	s.wasInWave = inWave

	if !spawn {
		return
	}
	cats := s.cfg.Derived.Categories
	category := cats[s.rng.Intn(len(cats))]
	h := float64(s.sprites.Trash[category].Height())
	span := s.cfg.River.BandBottom - s.cfg.River.BandTop - h
	y := s.cfg.River.BandTop
	if span > 0 {
		y += s.rng.Float64() * span
	}
	s.SpawnTrash(category, y)
}

func (s *Session) anyCarrying() bool {
	for _, c := range s.crocodiles {
		if c.Carrying() {
			return true
		}
	}
	return false
}

// pegadorBody is the net head only. The handle never catches or gets bitten.
func (s *Session) pegadorBody(p *systems.Pegador) collision.Body {
	mask := s.sprites.NetFront
	if p.Facing() == systems.FacingSide {
		mask = s.sprites.NetSide
	}
	cx, top := p.Position()
	return collision.Body{X: cx - float64(mask.Width())/2, Y: top, Mask: mask}
}

func (s *Session) pegadorMask(p *systems.Pegador) *collision.Mask {
	if p.Facing() == systems.FacingSide {
		return s.sprites.PegadorSide
	}
	return s.sprites.PegadorFront
}

func (s *Session) crocodileBody(c *systems.Crocodile) collision.Body {
	x, y := c.Position()
	return collision.Body{X: x, Y: y, Mask: s.crocodileMask(c)}
}

func (s *Session) crocodileMask(c *systems.Crocodile) *collision.Mask {
	if c.Direction() == systems.SwimLeft {
		return s.crocFlipped[c.Level()]
	}
	return s.sprites.Crocodile[c.Level()]
}

// addSplash starts a splash animation centred on (x, y).
func (s *Session) addSplash(x, y float64, now int64) {
	half := float64(s.cfg.Splash.FrameSize) / 2
	s.splashMapper.NewEntity(
		&components.Position{X: x - half, Y: y - half},
		&components.Splash{StartMs: now},
	)
}
