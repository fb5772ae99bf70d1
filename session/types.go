package session

import (
	"log/slog"

	"github.com/pthm-cable/rivercleanup/collision"
	"github.com/pthm-cable/rivercleanup/config"
	"github.com/pthm-cable/rivercleanup/systems"
)

// Input is the per-tick key state sampled by the presentation layer.
type Input struct {
	Left, Right bool
	Space       bool
	Escape      bool
}

// Controls returns the subset of the input the pegador reacts to.
func (in Input) Controls() systems.Controls {
	return systems.Controls{Left: in.Left, Right: in.Right, Space: in.Space}
}

// Sprites holds the opacity masks used for pixel-accurate collision. Masks
// are at display size, so a mask pixel is a screen pixel.
type Sprites struct {
	PegadorFront *collision.Mask
	PegadorSide  *collision.Mask
	NetFront     *collision.Mask // net head of PegadorFront, the part that collides
	NetSide      *collision.Mask
	Crocodile    [systems.LevelCount]*collision.Mask // facing right
	Trash        map[string]*collision.Mask
}

// SolidSprites builds fully opaque masks at the configured placeholder sizes.
func SolidSprites(cfg *config.Config) *Sprites {
	sp := &Sprites{Trash: make(map[string]*collision.Mask, len(cfg.Trash.Catalog))}
	sp.fill(cfg)
	return sp
}

// fill replaces every missing mask with a solid placeholder.
func (sp *Sprites) fill(cfg *config.Config) {
	pw, ph := cfg.Pegador.Width, cfg.Pegador.Height
	if sp.PegadorFront == nil {
		sp.PegadorFront = collision.Solid(pw, ph)
	}
	if sp.PegadorSide == nil {
		sp.PegadorSide = sp.PegadorFront
	}
	if sp.NetFront == nil {
		sp.NetFront = NetMask(sp.PegadorFront, cfg.Pegador)
	}
	if sp.NetSide == nil {
		sp.NetSide = NetMask(sp.PegadorSide, cfg.Pegador)
	}

	cw := int(float64(cfg.Crocodile.SpriteWidth) * cfg.Crocodile.Scale)
	ch := int(float64(cfg.Crocodile.SpriteHeight) * cfg.Crocodile.Scale)
	for i := range sp.Crocodile {
		if sp.Crocodile[i] == nil {
			sp.Crocodile[i] = collision.Solid(cw, ch)
		}
	}

	if sp.Trash == nil {
		sp.Trash = make(map[string]*collision.Mask, len(cfg.Trash.Catalog))
	}
	for _, entry := range cfg.Trash.Catalog {
		if sp.Trash[entry.Category] == nil {
			slog.Debug("using solid trash mask", "category", entry.Category, "w", entry.Width, "h", entry.Height)
			sp.Trash[entry.Category] = collision.Solid(entry.Width, entry.Height)
		}
	}
}

// NetMask crops a pegador mask to its net head: the top NetHeight rows,
// narrowed by NetInset and kept centred.
func NetMask(pegador *collision.Mask, cfg config.PegadorConfig) *collision.Mask {
	w := max(1, pegador.Width()-cfg.NetInset)
	h := min(cfg.NetHeight, pegador.Height())
	return pegador.Crop((pegador.Width()-w)/2, 0, w, h)
}

// RenderKind tags what a render item shows.
type RenderKind uint8

const (
	RenderTrash RenderKind = iota
	RenderSplash
	RenderCrocodile
	RenderPegador
)

// RenderItem is one sprite to draw this frame, in draw order. X and Y are
// the top-left corner in screen pixels.
type RenderItem struct {
	Kind     RenderKind
	X, Y     float64
	W, H     float64
	Category string         // trash only
	Level    systems.Level  // crocodile only
	Facing   systems.Facing // pegador only
	Frame    int            // crocodile animation or splash frame
	FlipH    bool
}

// HUD is the aggregate state shown on screen.
type HUD struct {
	Score            int
	Lives            int
	MaxLives         int
	PollutionPercent float64
	PollutionBand    systems.PollutionBand
	ForcePercent     float64
	Charging         bool
	InWave           bool
	GameOver         bool
	FinalScore       int
}

// Sound names a clip to play. Names match the audio section of the config.
type Sound string

const (
	SoundSplash   Sound = "splash"
	SoundCatch    Sound = "catch"
	SoundChomp    Sound = "chomp"
	SoundLost     Sound = "lost"
	SoundWave     Sound = "wave"
	SoundGameOver Sound = "game_over"
)
