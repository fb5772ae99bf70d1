// Package session runs one game of river cleanup: it owns every entity,
// sequences the per-tick updates and applies the rules that connect them.
//
// The session never touches the platform. It receives key state and a
// monotonic millisecond clock, and hands back a render list, the sounds to
// play and the HUD aggregates.
package session

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rivercleanup/collision"
	"github.com/pthm-cable/rivercleanup/components"
	"github.com/pthm-cable/rivercleanup/config"
	"github.com/pthm-cable/rivercleanup/systems"
)

// Session is a single game from start to game over.
type Session struct {
	cfg      *config.Config
	sprites  *Sprites
	rng      *rand.Rand
	observer Observer

	// Crocodile masks mirrored for swimming left
	crocFlipped [systems.LevelCount]*collision.Mask

	// ECS
	world        *ecs.World
	trashMapper  *ecs.Map4[components.Position, components.Size, components.Drift, components.Trash]
	splashMapper *ecs.Map2[components.Position, components.Splash]
	trashFilter  *ecs.Filter3[components.Position, components.Size, components.Trash]
	splashFilter *ecs.Filter2[components.Position, components.Splash]
	posMap       *ecs.Map1[components.Position]
	sizeMap      *ecs.Map1[components.Size]
	trashMap     *ecs.Map1[components.Trash]

	// Systems
	drift   *systems.DriftSystem
	splash  *systems.SplashSystem
	spawner *systems.SpawnManager

	// Entities outside the world
	pegador    *systems.Pegador
	crocodiles []*systems.Crocodile

	// Aggregates
	pollution     *systems.Pollution
	lives         *systems.Lives
	score         int
	unlocked      bool
	secondSpawned bool
	inCooldown    bool
	cooldownUntil int64
	wasInWave     bool
	gameOver      bool
	finalScore    int

	riverOffset float64
	nowMs       int64

	sounds []Sound
	render []RenderItem

	clock stepClock
}

// New creates a session whose clock starts at now. Missing masks in sprites
// are replaced by solid placeholders.
func New(cfg *config.Config, sprites *Sprites, rng *rand.Rand, now int64) *Session {
	if sprites == nil {
		sprites = &Sprites{}
	}
	sprites.fill(cfg)

	s := &Session{
		cfg:     cfg,
		sprites: sprites,
		rng:     rng,
	}
	for i, m := range sprites.Crocodile {
		s.crocFlipped[i] = m.FlipH()
	}
	s.init(now)
	return s
}

// init builds a fresh world and every entity for a new game.
func (s *Session) init(now int64) {
	world := ecs.NewWorld()
	s.world = world
	s.trashMapper = ecs.NewMap4[components.Position, components.Size, components.Drift, components.Trash](world)
	s.splashMapper = ecs.NewMap2[components.Position, components.Splash](world)
	s.trashFilter = ecs.NewFilter3[components.Position, components.Size, components.Trash](world)
	s.splashFilter = ecs.NewFilter2[components.Position, components.Splash](world)
	s.posMap = ecs.NewMap1[components.Position](world)
	s.sizeMap = ecs.NewMap1[components.Size](world)
	s.trashMap = ecs.NewMap1[components.Trash](world)

	s.drift = systems.NewDriftSystem(world, s.cfg)
	s.splash = systems.NewSplashSystem(world, s.cfg)
	s.spawner = systems.NewSpawnManager(s.cfg, s.rng, now)

	s.pollution = systems.NewPollution(s.cfg)
	s.lives = systems.NewLives(s.cfg.Pegador.MaxLives)
	s.score = 0
	s.unlocked = false
	s.secondSpawned = false
	s.inCooldown = false
	s.cooldownUntil = 0
	s.wasInWave = false
	s.gameOver = false
	s.finalScore = 0
	s.riverOffset = 0
	s.nowMs = now
	s.sounds = nil

	s.pegador = s.newPegador()
	s.crocodiles = []*systems.Crocodile{s.newFirstCrocodile(now)}
	s.buildRenderList()

	slog.Info("session started",
		"lives", s.lives.Max(),
		"pollution", s.pollution.Points(),
		"debug_crocodile", s.cfg.Crocodile.Debug.Enabled,
	)
}

// Restart discards the current game and starts a new one at now.
func (s *Session) Restart(now int64) {
	slog.Info("session restarting", "previous_score", s.score)
	s.init(now)
	s.notify(Event{Kind: EventRestart})
}

// SetObserver installs the event observer. Pass nil to remove it.
func (s *Session) SetObserver(o Observer) {
	s.observer = o
}

// Update advances the game by one tick. It does nothing once the game is over.
func (s *Session) Update(now int64, in Input) {
	if s.gameOver {
		return
	}
	s.nowMs = now
	s.clock.start()

	s.advanceRiver()
	s.clock.lap(StepRiver)

	// Crocodiles first so a held pegador follows this tick's mouth position
	for _, c := range s.crocodiles {
		c.Update(now)
	}
	s.clock.lap(StepCrocodiles)

	if s.pegador != nil {
		s.pegador.Update(now, in.Controls())
	}
	s.updateOrphans(now)
	s.clock.lap(StepPegador)

	s.drift.Update()
	s.updateSplashes(now)
	s.clock.lap(StepDrift)

	s.updateRespawn(now)
	for _, c := range s.crocodiles {
		s.handleCrocodileEvents(c, now)
	}
	s.clock.lap(StepEvents)

	s.checkCrocodileCollision(now)
	s.checkTrashCollision(now)
	s.clock.lap(StepCollisions)

	s.cullLostTrash(now)
	s.cullSubmergedCarriers()
	s.checkGameOver(now)
	s.clock.lap(StepCulling)

	if !s.gameOver {
		s.maybeSpawnSecondCrocodile(now)
		s.maybeSpawnTrash(now)
		s.clock.lap(StepSpawn)
	}

	s.buildRenderList()
	s.clock.lap(StepRenderList)
}

// advanceRiver scrolls the background offset, wrapping at one tile.
func (s *Session) advanceRiver() {
	flow := s.cfg.River.FlowSpeed
	tile := s.cfg.River.TileWidth
	s.riverOffset += flow
	if flow > 0 && s.riverOffset >= tile {
		s.riverOffset = 0
	} else if flow < 0 && s.riverOffset <= -tile {
		s.riverOffset = 0
	}
}

// updateOrphans moves pegadors still carried after a replacement appeared.
func (s *Session) updateOrphans(now int64) {
	for _, c := range s.crocodiles {
		if p := c.Carried(); p != nil && p != s.pegador {
			p.Update(now, systems.Controls{})
		}
	}
}

// updateSplashes advances splash animations and removes finished ones.
func (s *Session) updateSplashes(now int64) {
	for _, e := range s.splash.Update(now) {
		s.world.RemoveEntity(e)
	}
}

// updateRespawn brings in a fresh pegador once the capture cooldown is over.
func (s *Session) updateRespawn(now int64) {
	if !s.inCooldown || now < s.cooldownUntil {
		return
	}
	s.inCooldown = false
	if s.pegador == nil || s.pegador.State() == systems.PegadorCaught {
		s.pegador = s.newPegador()
		slog.Debug("pegador respawned", "lives", s.lives.Remaining())
	}
}

// Pegador returns the active pegador, or nil between a loss and the respawn.
func (s *Session) Pegador() *systems.Pegador { return s.pegador }

// Crocodiles returns the crocodiles in collision order.
func (s *Session) Crocodiles() []*systems.Crocodile { return s.crocodiles }

// GameOver reports whether the game has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// FinalScore returns the score recorded when the game ended.
func (s *Session) FinalScore() int { return s.finalScore }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// RiverOffset returns the background scroll offset in pixels.
func (s *Session) RiverOffset() float64 { return s.riverOffset }

// Now returns the clock time of the last update.
func (s *Session) Now() int64 { return s.nowMs }

// Lives returns the lives counter.
func (s *Session) Lives() *systems.Lives { return s.lives }

// Pollution returns the pollution meter.
func (s *Session) Pollution() *systems.Pollution { return s.pollution }

// Spawner returns the trash spawn manager.
func (s *Session) Spawner() *systems.SpawnManager { return s.spawner }

// TrashCount returns the number of floating items, held ones included.
func (s *Session) TrashCount() int {
	n := 0
	query := s.trashFilter.Query()
	for query.Next() {
		n++
	}
	return n
}

// DrainSounds returns the sounds queued since the last call.
func (s *Session) DrainSounds() []Sound {
	if len(s.sounds) == 0 {
		return nil
	}
	out := s.sounds
	s.sounds = nil
	return out
}

// HUD returns the on-screen aggregates.
func (s *Session) HUD() HUD {
	h := HUD{
		Score:            s.score,
		Lives:            s.lives.Remaining(),
		MaxLives:         s.lives.Max(),
		PollutionPercent: s.pollution.Percent(),
		PollutionBand:    s.pollution.Band(),
		InWave:           s.spawner.InWave(),
		GameOver:         s.gameOver,
		FinalScore:       s.finalScore,
	}
	if s.pegador != nil {
		h.ForcePercent = s.pegador.ForcePercent()
		h.Charging = s.pegador.State() == systems.PegadorCharging
	}
	return h
}

func (s *Session) play(snd Sound) {
	s.sounds = append(s.sounds, snd)
}

func (s *Session) notify(e Event) {
	if s.observer == nil {
		return
	}
	e.AtMs = s.nowMs
	e.Score = s.score
	e.Lives = s.lives.Remaining()
	e.Pollution = s.pollution.Percent()
	s.observer.Observe(e)
}
