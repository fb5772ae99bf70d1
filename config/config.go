// Package config provides configuration loading for the river cleanup game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable game parameter. It is built once per process
// and passed by pointer into the components that need it; nothing mutates it
// once the game starts.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	River     RiverConfig     `yaml:"river"`
	Trash     TrashConfig     `yaml:"trash"`
	Pegador   PegadorConfig   `yaml:"pegador"`
	Crocodile CrocodileConfig `yaml:"crocodile"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Pollution PollutionConfig `yaml:"pollution"`
	Score     ScoreConfig     `yaml:"score"`
	Splash    SplashConfig    `yaml:"splash"`
	Audio     AudioConfig     `yaml:"audio"`
	Camera    CameraConfig    `yaml:"camera"`
	Assets    AssetsConfig    `yaml:"assets"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// RiverConfig holds the river flow and the vertical band trash floats in.
type RiverConfig struct {
	FlowSpeed      float64 `yaml:"flow_speed"`      // pixels per tick, sign is the flow direction
	BandTop        float64 `yaml:"band_top"`        // smallest y of the band
	BandBottom     float64 `yaml:"band_bottom"`     // largest y of the band
	BounceReversal float64 `yaml:"bounce_reversal"` // vertical velocity factor on bounce
	TileWidth      float64 `yaml:"tile_width"`      // background tile width for the scroll offset
}

// TrashConfig holds floating object parameters.
type TrashConfig struct {
	MaxBounceSpeed float64        `yaml:"max_bounce_speed"`
	Catalog        []CatalogEntry `yaml:"catalog"`
}

// CatalogEntry maps a trash category to its visual asset and display scale.
// Width and Height size the placeholder used when the asset is missing.
type CatalogEntry struct {
	Category string  `yaml:"category"`
	Asset    string  `yaml:"asset"`
	Scale    float64 `yaml:"scale"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
}

// PegadorConfig holds the net's movement, force and lives parameters.
type PegadorConfig struct {
	Speed             float64 `yaml:"speed"`
	VerticalSpeed     float64 `yaml:"vertical_speed"`
	ChargeRate        float64 `yaml:"charge_rate"`
	MaxForce          float64 `yaml:"max_force"`
	MarginY           float64 `yaml:"margin_y"`
	NetOffset         float64 `yaml:"net_offset"`
	MaxLives          int     `yaml:"max_lives"`
	ShowCatchMs       int64   `yaml:"show_catch_ms"`
	RespawnCooldownMs int64   `yaml:"respawn_cooldown_ms"`
	Scale             float64 `yaml:"scale"`
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	NetHeight         int     `yaml:"net_height"` // rows at the sprite top that catch
	NetInset          int     `yaml:"net_inset"`  // columns trimmed from the collision width
}

// CrocodileConfig holds crocodile timing, movement and sprite geometry.
type CrocodileConfig struct {
	SwimSpeed          float64 `yaml:"swim_speed"`
	CarrySpeed         float64 `yaml:"carry_speed"`
	MaxVelY            float64 `yaml:"max_vel_y"`
	Wobble             float64 `yaml:"wobble"`
	VelChangeMinMs     int64   `yaml:"vel_change_min_ms"`
	VelChangeMaxMs     int64   `yaml:"vel_change_max_ms"`
	StateChangeMinMs   int64   `yaml:"state_change_min_ms"`
	StateChangeMaxMs   int64   `yaml:"state_change_max_ms"`
	TurnMargin         float64 `yaml:"turn_margin"`
	MouthOffset        float64 `yaml:"mouth_offset"`
	SpriteWidth        int     `yaml:"sprite_width"`
	SpriteHeight       int     `yaml:"sprite_height"`
	Scale              float64 `yaml:"scale"`
	AnimationTicks     int     `yaml:"animation_ticks"`
	CarryWaitMs        int64   `yaml:"carry_wait_ms"`
	SecondUnlockScore  int     `yaml:"second_unlock_score"`
	SecondMaxPollution float64 `yaml:"second_max_pollution"`

	Debug DebugCrocodileConfig `yaml:"debug"`
}

// DebugCrocodileConfig pins the first crocodile in place and cycles its
// submersion levels in order, for checking sprites and collisions.
type DebugCrocodileConfig struct {
	Enabled bool    `yaml:"enabled"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	CycleMs int64   `yaml:"cycle_ms"`
}

// SpawnConfig holds the trash spawn cadence: warm-up, acceleration and waves.
type SpawnConfig struct {
	WarmupMs               int64 `yaml:"warmup_ms"`
	InitialRateMs          int64 `yaml:"initial_rate_ms"`
	MinRateMs              int64 `yaml:"min_rate_ms"`
	AccelerationIntervalMs int64 `yaml:"acceleration_interval_ms"`
	AccelerationAmountMs   int64 `yaml:"acceleration_amount_ms"`
	WaveIntervalMinMs      int64 `yaml:"wave_interval_min_ms"`
	WaveIntervalMaxMs      int64 `yaml:"wave_interval_max_ms"`
	WaveDurationMs         int64 `yaml:"wave_duration_ms"`
	WaveRateMs             int64 `yaml:"wave_rate_ms"`
}

// PollutionConfig holds the pollution meter bounds and steps.
type PollutionConfig struct {
	MaxPoints       int     `yaml:"max_points"`
	LostPerTrash    int     `yaml:"lost_per_trash"`
	CaughtPerTrash  int     `yaml:"caught_per_trash"`
	LowThreshold    float64 `yaml:"low_threshold"`    // fraction of max, inclusive
	MediumThreshold float64 `yaml:"medium_threshold"` // fraction of max, inclusive
}

// ScoreConfig holds scoring parameters.
type ScoreConfig struct {
	PointsPerCatch int `yaml:"points_per_catch"`
}

// SplashConfig holds the splash effect animation.
type SplashConfig struct {
	Frames    int   `yaml:"frames"`
	FrameMs   int64 `yaml:"frame_ms"`
	FrameSize int   `yaml:"frame_size"`
}

// AudioConfig maps sound names to files.
type AudioConfig struct {
	Volume float32           `yaml:"volume"`
	Sounds map[string]string `yaml:"sounds"`
}

// CameraConfig holds the screen shake played when a crocodile bites.
type CameraConfig struct {
	ShakeAmplitude float32 `yaml:"shake_amplitude"` // pixels
	ShakeMs        int64   `yaml:"shake_ms"`
}

// AssetsConfig holds asset file names, relative to Dir.
type AssetsConfig struct {
	Dir            string `yaml:"dir"`
	River          string `yaml:"river"`
	Margins        string `yaml:"margins"`
	PegadorFront   string `yaml:"pegador_front"`
	PegadorSide    string `yaml:"pegador_side"`
	Crocodile      string `yaml:"crocodile"`
	Splash         string `yaml:"splash"`
	Sign           string `yaml:"sign"`
	Phrases        string `yaml:"phrases"`
	AlphaThreshold uint8  `yaml:"alpha_threshold"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowMs int64 `yaml:"window_ms"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	BandHeight    float64        // River.BandBottom - River.BandTop
	TickMs        int64          // nominal milliseconds per frame
	ScreenW       float64        // Screen.Width as float64
	ScreenH       float64        // Screen.Height as float64
	Categories    []string       // catalog categories in declaration order
	CategoryIndex map[string]int // category -> catalog index
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate reports the first parameter combination the game cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return errors.New("screen dimensions must be positive")
	case c.Screen.TargetFPS <= 0:
		return errors.New("screen.target_fps must be positive")
	case c.River.FlowSpeed == 0:
		return errors.New("river.flow_speed must not be zero")
	case c.River.BandTop >= c.River.BandBottom:
		return fmt.Errorf("river band top %v must be above bottom %v", c.River.BandTop, c.River.BandBottom)
	case c.Pegador.MaxForce <= 0:
		return errors.New("pegador.max_force must be positive")
	case c.Pegador.MaxLives <= 0:
		return errors.New("pegador.max_lives must be positive")
	case c.Pegador.NetHeight <= 0:
		return errors.New("pegador.net_height must be positive")
	case c.Pegador.NetInset < 0 || c.Pegador.NetInset >= c.Pegador.Width:
		return fmt.Errorf("pegador.net_inset %d must be in [0, %d)", c.Pegador.NetInset, c.Pegador.Width)
	case c.Pollution.MaxPoints <= 0:
		return errors.New("pollution.max_points must be positive")
	case c.Spawn.MinRateMs > c.Spawn.InitialRateMs:
		return fmt.Errorf("spawn.min_rate_ms %d exceeds initial rate %d", c.Spawn.MinRateMs, c.Spawn.InitialRateMs)
	case c.Spawn.WaveIntervalMinMs > c.Spawn.WaveIntervalMaxMs:
		return errors.New("spawn wave interval min exceeds max")
	case c.Crocodile.StateChangeMinMs > c.Crocodile.StateChangeMaxMs:
		return errors.New("crocodile state change min exceeds max")
	case c.Crocodile.VelChangeMinMs > c.Crocodile.VelChangeMaxMs:
		return errors.New("crocodile velocity change min exceeds max")
	case len(c.Trash.Catalog) == 0:
		return errors.New("trash.catalog is empty")
	}

	seen := make(map[string]bool, len(c.Trash.Catalog))
	for _, entry := range c.Trash.Catalog {
		if entry.Category == "" {
			return errors.New("trash.catalog entry without category")
		}
		if seen[entry.Category] {
			return fmt.Errorf("trash.catalog category %q declared twice", entry.Category)
		}
		seen[entry.Category] = true
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.BandHeight = c.River.BandBottom - c.River.BandTop
	c.Derived.TickMs = int64(1000 / c.Screen.TargetFPS)
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)

	if c.River.TileWidth <= 0 {
		c.River.TileWidth = c.Derived.ScreenW
	}

	c.Derived.Categories = make([]string, len(c.Trash.Catalog))
	c.Derived.CategoryIndex = make(map[string]int, len(c.Trash.Catalog))
	for i := range c.Trash.Catalog {
		entry := &c.Trash.Catalog[i]
		if entry.Scale == 0 {
			entry.Scale = 1.0
		}
		c.Derived.Categories[i] = entry.Category
		c.Derived.CategoryIndex[entry.Category] = i
	}
}

// Entry returns the catalog entry for a category.
func (c *Config) Entry(category string) (CatalogEntry, bool) {
	i, ok := c.Derived.CategoryIndex[category]
	if !ok {
		return CatalogEntry{}, false
	}
	return c.Trash.Catalog[i], true
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
