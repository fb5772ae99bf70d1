// Package game ties the session to raylib: it samples the keyboard and the
// clock, feeds the session, draws its render list, plays its sounds and
// records telemetry.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/assets"
	"github.com/pthm-cable/rivercleanup/camera"
	"github.com/pthm-cable/rivercleanup/config"
	"github.com/pthm-cable/rivercleanup/content"
	"github.com/pthm-cable/rivercleanup/renderer"
	"github.com/pthm-cable/rivercleanup/session"
	"github.com/pthm-cable/rivercleanup/telemetry"
	"github.com/pthm-cable/rivercleanup/ui"
)

// Options configures game construction.
type Options struct {
	Seed      int64
	LogStats  bool   // log window stats via slog
	OutputDir string // CSV and YAML output, empty disables it
	Headless  bool   // no window, autopilot input, synthetic clock
	Debug     bool   // show debug overlay legend
}

// Game holds the complete game state.
type Game struct {
	cfg     *config.Config
	rng     *rand.Rand
	session *session.Session

	headless  bool
	autopilot *session.Autopilot

	// Presentation, nil when headless
	lib       *assets.Library
	camera    *camera.Camera
	river     *renderer.RiverRenderer
	scene     *renderer.SceneRenderer
	sign      *renderer.SignRenderer
	hud       *ui.HUD
	gameOver  *ui.GameOverOverlay
	overlays  *ui.OverlayRegistry
	perfPanel *ui.PerfPanel
	debug     bool

	// Telemetry
	collector     *telemetry.Collector
	outputManager *telemetry.OutputManager
	perfCollector *telemetry.PerfCollector
	logStats      bool

	tick  int64
	games int
	quit  bool
}

// NewGame creates a game. In graphical mode the raylib window must already
// be open.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		headless:      opts.Headless,
		debug:         opts.Debug,
		logStats:      opts.LogStats,
		perfCollector: telemetry.NewPerfCollector(cfg.Screen.TargetFPS),
		games:         1,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om

	var sprites *session.Sprites
	if !g.headless {
		g.lib = assets.Load(cfg)
		sprites = g.lib.Sprites()
		if tw := g.lib.TileWidth(); tw > 0 && tw != cfg.River.TileWidth {
			slog.Debug("river tile width from texture", "from", cfg.River.TileWidth, "to", tw)
			cfg.River.TileWidth = tw
		}
	}

	if err := g.outputManager.WriteConfig(cfg); err != nil {
		g.outputManager.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	now := g.now()
	g.session = session.New(cfg, sprites, g.rng, now)
	g.collector = telemetry.NewCollector(cfg, g.outputManager, now)
	g.session.SetObserver(g.collector)
	g.session.SetStepTimer(g.perfCollector)

	if g.headless {
		g.autopilot = session.NewAutopilot(g.session)
	} else {
		g.initPresentation()
	}

	slog.Info("game created",
		"seed", opts.Seed,
		"headless", g.headless,
		"session_id", g.collector.SessionID(),
		"output_dir", g.outputManager.Dir(),
	)
	return g, nil
}

// initPresentation builds the renderers and UI panels.
func (g *Game) initPresentation() {
	cfg := g.cfg
	sw, sh := int32(cfg.Screen.Width), int32(cfg.Screen.Height)

	g.camera = camera.New()
	g.river = renderer.NewRiverRenderer(g.lib.River, g.lib.Margins, sw)
	g.scene = renderer.NewSceneRenderer(g.lib, cfg.Splash.FrameSize, false)
	g.sign = renderer.NewSignRenderer(g.lib.Sign, float32(sw)-130, 8, content.Pick(g.lib.Phrases, g.rng))
	g.hud = ui.NewHUD(g.lib.PegadorFront, sw, sh)
	g.gameOver = ui.NewGameOverOverlay(sw, sh)
	g.overlays = ui.NewOverlayRegistry()
	g.perfPanel = ui.NewPerfPanel(sw-190, 60, 180)
	if g.debug {
		g.overlays.SetEnabled(ui.OverlayCollisionBoxes, true)
		g.overlays.SetEnabled(ui.OverlayBand, true)
	}
}

// now returns the session clock in milliseconds. Headless runs advance a
// synthetic clock by one nominal tick per update.
func (g *Game) now() int64 {
	if g.headless {
		return g.tick * g.cfg.Derived.TickMs
	}
	return int64(rl.GetTime() * 1000)
}

// Update advances one frame in graphical mode. Draw must follow.
func (g *Game) Update() {
	g.perfCollector.BeginTick()

	in := readInput()
	g.overlays.HandleInput()
	if in.Escape {
		g.quit = true
	}
	now := g.now()
	g.perfCollector.Lap(telemetry.StageInput)

	// Timed step by step through the session's step timer
	g.session.Update(now, in)
	g.perfCollector.Skip()

	for _, snd := range g.session.DrainSounds() {
		g.lib.Play(snd)
		if snd == session.SoundChomp {
			g.camera.Shake(now, g.cfg.Camera.ShakeAmplitude, g.cfg.Camera.ShakeMs)
		}
	}
	g.perfCollector.Lap(telemetry.StageAudio)

	g.flushTelemetry(now)
	g.perfCollector.Lap(telemetry.StageTelemetry)

	g.tick++
}

// UpdateHeadless advances one tick driven by the autopilot. A finished game
// is restarted immediately.
func (g *Game) UpdateHeadless() {
	g.perfCollector.BeginTick()

	in := g.autopilot.Next()
	now := g.now()
	g.perfCollector.Lap(telemetry.StageInput)

	g.session.Update(now, in)
	g.perfCollector.Skip()
	g.session.DrainSounds()
	if g.session.GameOver() {
		slog.Info("game over", "game", g.games, "final_score", g.session.FinalScore(), "tick", g.tick)
		g.restart(now)
	}

	g.flushTelemetry(now)
	g.perfCollector.Lap(telemetry.StageTelemetry)

	g.perfCollector.EndTick()
	g.tick++
}

// restart begins a new game with a new sign phrase.
func (g *Game) restart(now int64) {
	g.session.Restart(now)
	g.games++
	if g.camera != nil {
		g.camera.Reset()
	}
	if g.sign != nil {
		g.sign.SetPhrase(content.Pick(g.lib.Phrases, g.rng))
	}
}

// ShouldQuit reports whether the player asked to leave.
func (g *Game) ShouldQuit() bool {
	return g.quit
}

// Tick returns the number of updates run.
func (g *Game) Tick() int64 {
	return g.tick
}

// Games returns the number of games started, including the current one.
func (g *Game) Games() int {
	return g.games
}

// Session exposes the running session.
func (g *Game) Session() *session.Session {
	return g.session
}

// Unload writes the run summary and frees resources.
func (g *Game) Unload() {
	if err := g.outputManager.WriteSummary(g.collector.Summary()); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	if g.lib != nil {
		g.lib.Unload()
	}
}
