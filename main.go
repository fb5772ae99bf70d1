package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/config"
	"github.com/pthm-cable/rivercleanup/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, driven by the autopilot")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs, config and summary")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	maxGames := flag.Int("max-games", 0, "Headless: stop after N finished games (0 = unlimited)")
	logText := flag.Bool("log-text", false, "Log as text instead of JSON")
	debug := flag.Bool("debug", false, "Debug logging, overlays and the pinned debug crocodile")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	if *logText {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	}
	slog.SetDefault(slog.New(handler))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Crocodile.Debug.Enabled = true
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Headless:  *headless,
		Debug:     *debug,
	}

	if *headless {
		runHeadless(cfg, opts, *maxTicks, *maxGames)
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()
	rl.InitAudioDevice()
	defer rl.CloseAudioDevice()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		return
	}
	defer g.Unload()

	for !rl.WindowShouldClose() && !g.ShouldQuit() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			break
		}
	}
}

// runHeadless plays games with the autopilot on a synthetic clock.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks, maxGames int) {
	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to start game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless run",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"max_games", maxGames,
	)

	for {
		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
		// Games counts the one in progress
		if maxGames > 0 && g.Games() > maxGames {
			slog.Info("max games reached", "games", maxGames, "tick", g.Tick())
			return
		}
	}
}
