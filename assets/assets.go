// Package assets loads textures and sounds through raylib and derives the
// collision masks the session needs. Every missing file is replaced by a
// placeholder so the game always starts.
package assets

import (
	"log/slog"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/rivercleanup/collision"
	"github.com/pthm-cable/rivercleanup/config"
	"github.com/pthm-cable/rivercleanup/content"
	"github.com/pthm-cable/rivercleanup/session"
	"github.com/pthm-cable/rivercleanup/systems"
)

// Crocodile sheet layout: one row per visible level, two animation frames.
const (
	crocodileRows   = 4
	crocodileFrames = 2
)

// Library holds every GPU resource the game draws with.
type Library struct {
	cfg *config.Config

	River   rl.Texture2D
	Margins rl.Texture2D
	Sign    rl.Texture2D
	Splash  rl.Texture2D // vertical strip of square frames

	PegadorFront rl.Texture2D
	PegadorSide  rl.Texture2D

	// Crocodile frames at display size, facing right
	Crocodile [crocodileRows][crocodileFrames]rl.Texture2D

	Trash map[string]rl.Texture2D

	// Sign text candidates
	Phrases []string

	sprites *session.Sprites
	sounds  map[session.Sound]rl.Sound
	audio   bool
}

// Load reads every asset named in cfg. Call after the window is created.
func Load(cfg *config.Config) *Library {
	lib := &Library{
		cfg:     cfg,
		Trash:   make(map[string]rl.Texture2D, len(cfg.Trash.Catalog)),
		sprites: &session.Sprites{Trash: make(map[string]*collision.Mask, len(cfg.Trash.Catalog))},
		sounds:  make(map[session.Sound]rl.Sound, len(cfg.Audio.Sounds)),
	}
	sh := cfg.Screen.Height
	threshold := cfg.Assets.AlphaThreshold

	lib.River = lib.loadTexture(cfg.Assets.River, 0, 0, rl.Color{R: 40, G: 90, B: 140, A: 255})
	lib.River = fitHeight(lib.River, sh)
	lib.Margins = fitHeight(lib.loadTexture(cfg.Assets.Margins, 0, 0, rl.Blank), sh)
	lib.Sign = lib.loadTexture(cfg.Assets.Sign, 110, 70, rl.Color{R: 150, G: 110, B: 60, A: 255})
	lib.Splash = lib.loadTexture(cfg.Assets.Splash, cfg.Splash.FrameSize, cfg.Splash.FrameSize*cfg.Splash.Frames, rl.Color{R: 200, G: 230, B: 255, A: 160})

	pw, ph := cfg.Pegador.Width, cfg.Pegador.Height
	lib.PegadorFront, lib.sprites.PegadorFront = lib.loadScaled(cfg.Assets.PegadorFront, cfg.Pegador.Scale, pw, ph, rl.LightGray, threshold)
	lib.PegadorSide, lib.sprites.PegadorSide = lib.loadScaled(cfg.Assets.PegadorSide, cfg.Pegador.Scale, pw, ph, rl.Gray, threshold)
	lib.sprites.NetFront = session.NetMask(lib.sprites.PegadorFront, cfg.Pegador)
	lib.sprites.NetSide = session.NetMask(lib.sprites.PegadorSide, cfg.Pegador)

	lib.loadCrocodile(threshold)

	for _, entry := range cfg.Trash.Catalog {
		tint := content.CategoryColor(entry.Category)
		tex, mask := lib.loadScaled(entry.Asset, entry.Scale, entry.Width, entry.Height, tint, threshold)
		lib.Trash[entry.Category] = tex
		lib.sprites.Trash[entry.Category] = mask
	}

	lib.Phrases = content.LoadPhrases(lib.path(cfg.Assets.Phrases))

	if rl.IsAudioDeviceReady() {
		lib.audio = true
		for name, file := range cfg.Audio.Sounds {
			lib.loadSound(session.Sound(name), file)
		}
	} else {
		slog.Warn("audio device not ready, sounds disabled")
	}

	return lib
}

// Sprites returns the masks derived from the loaded textures.
func (l *Library) Sprites() *session.Sprites {
	return l.sprites
}

// TileWidth returns the river tile width at display scale.
func (l *Library) TileWidth() float64 {
	return float64(l.River.Width)
}

// Play starts a sound. Unknown or missing sounds are silent.
func (l *Library) Play(name session.Sound) {
	if !l.audio {
		return
	}
	if s, ok := l.sounds[name]; ok {
		rl.PlaySound(s)
	}
}

// CrocodileFrame returns the texture for a level and animation frame.
func (l *Library) CrocodileFrame(level systems.Level, frame int) (rl.Texture2D, bool) {
	if int(level) >= crocodileRows {
		return rl.Texture2D{}, false
	}
	return l.Crocodile[level][frame%crocodileFrames], true
}

// Unload frees resources.
func (l *Library) Unload() {
	for _, tex := range []rl.Texture2D{l.River, l.Margins, l.Sign, l.Splash, l.PegadorFront, l.PegadorSide} {
		unloadTexture(tex)
	}
	for row := range l.Crocodile {
		for _, tex := range l.Crocodile[row] {
			unloadTexture(tex)
		}
	}
	for _, tex := range l.Trash {
		unloadTexture(tex)
	}
	for _, s := range l.sounds {
		rl.UnloadSound(s)
	}
	l.sounds = nil
}

func (l *Library) path(name string) string {
	return filepath.Join(l.cfg.Assets.Dir, name)
}

// loadImage reads an image file, returning nil when it is missing.
func (l *Library) loadImage(name string) *rl.Image {
	path := l.path(name)
	if !rl.FileExists(path) {
		slog.Warn("asset missing, using placeholder", "path", path)
		return nil
	}
	img := rl.LoadImage(path)
	if img == nil || img.Width == 0 || img.Height == 0 {
		slog.Warn("asset unreadable, using placeholder", "path", path)
		return nil
	}
	return img
}

// loadTexture loads an image as-is, or a solid w×h placeholder.
func (l *Library) loadTexture(name string, w, h int, tint rl.Color) rl.Texture2D {
	img := l.loadImage(name)
	if img == nil {
		if w == 0 || h == 0 {
			w, h = l.cfg.Screen.Width, l.cfg.Screen.Height
		}
		img = rl.GenImageColor(w, h, tint)
	}
	defer rl.UnloadImage(img)
	return rl.LoadTextureFromImage(img)
}

// loadScaled loads an image resized by scale and its opacity mask. The
// placeholder is a solid w×h rectangle at display size.
func (l *Library) loadScaled(name string, scale float64, w, h int, tint rl.Color, threshold uint8) (rl.Texture2D, *collision.Mask) {
	img := l.loadImage(name)
	if img == nil {
		img = rl.GenImageColor(w, h, tint)
		defer rl.UnloadImage(img)
		return rl.LoadTextureFromImage(img), collision.Solid(w, h)
	}
	defer rl.UnloadImage(img)

	dw := int32(float64(img.Width) * scale)
	dh := int32(float64(img.Height) * scale)
	if dw > 0 && dh > 0 && (dw != img.Width || dh != img.Height) {
		rl.ImageResize(img, dw, dh)
	}
	return rl.LoadTextureFromImage(img), maskOf(img, threshold)
}

// loadCrocodile cuts the sheet into per-level frames scaled with nearest
// neighbour, and takes each level's mask from its first frame.
func (l *Library) loadCrocodile(threshold uint8) {
	cc := l.cfg.Crocodile
	fw, fh := int32(cc.SpriteWidth), int32(cc.SpriteHeight)
	dw := int32(float64(fw) * cc.Scale)
	dh := int32(float64(fh) * cc.Scale)

	sheet := l.loadImage(l.cfg.Assets.Crocodile)
	if sheet != nil && (sheet.Width < fw*crocodileFrames || sheet.Height < fh*crocodileRows) {
		slog.Warn("crocodile sheet too small, using placeholder",
			"w", sheet.Width, "h", sheet.Height,
			"want_w", fw*crocodileFrames, "want_h", fh*crocodileRows,
		)
		rl.UnloadImage(sheet)
		sheet = nil
	}

	for row := 0; row < crocodileRows; row++ {
		for col := 0; col < crocodileFrames; col++ {
			var frame *rl.Image
			if sheet == nil {
				// Lighter green the deeper it swims
				shade := uint8(80 + 30*row)
				frame = rl.GenImageColor(int(dw), int(dh), rl.Color{R: 30, G: shade, B: 40, A: 255})
			} else {
				frame = rl.ImageCopy(sheet)
				rl.ImageCrop(frame, rl.Rectangle{
					X:      float32(int32(col) * fw),
					Y:      float32(int32(row) * fh),
					Width:  float32(fw),
					Height: float32(fh),
				})
				rl.ImageResizeNN(frame, dw, dh)
			}
			l.Crocodile[row][col] = rl.LoadTextureFromImage(frame)
			if col == 0 {
				if sheet == nil {
					l.sprites.Crocodile[row] = collision.Solid(int(dw), int(dh))
				} else {
					l.sprites.Crocodile[row] = maskOf(frame, threshold)
				}
			}
			rl.UnloadImage(frame)
		}
	}
	if sheet != nil {
		rl.UnloadImage(sheet)
	}
	// The hidden level never collides
	l.sprites.Crocodile[systems.FullySubmerged] = collision.NewMask(int(dw), int(dh))
}

func (l *Library) loadSound(name session.Sound, file string) {
	path := l.path(file)
	if !rl.FileExists(path) {
		slog.Warn("sound missing, playing silence", "sound", name, "path", path)
		return
	}
	s := rl.LoadSound(path)
	if s.FrameCount == 0 {
		slog.Warn("sound unreadable, playing silence", "sound", name, "path", path)
		return
	}
	rl.SetSoundVolume(s, l.cfg.Audio.Volume)
	l.sounds[name] = s
}

// maskOf extracts the opacity mask of an image at its current size.
func maskOf(img *rl.Image, threshold uint8) *collision.Mask {
	colors := rl.LoadImageColors(img)
	defer rl.UnloadImageColors(colors)

	alpha := make([]uint8, len(colors))
	for i, c := range colors {
		alpha[i] = c.A
	}
	return collision.MaskFromAlpha(int(img.Width), int(img.Height), alpha, threshold)
}

// fitHeight rescales a texture to the screen height keeping its aspect, so
// the river tiles horizontally.
func fitHeight(tex rl.Texture2D, screenH int) rl.Texture2D {
	if tex.Height == 0 || int(tex.Height) == screenH {
		return tex
	}
	img := rl.LoadImageFromTexture(tex)
	rl.UnloadTexture(tex)
	defer rl.UnloadImage(img)

	w := int32(float64(img.Width) * float64(screenH) / float64(img.Height))
	rl.ImageResize(img, w, int32(screenH))
	return rl.LoadTextureFromImage(img)
}

func unloadTexture(tex rl.Texture2D) {
	if tex.ID != 0 {
		rl.UnloadTexture(tex)
	}
}
