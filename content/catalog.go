package content

import "image/color"

// Placeholder colours for trash drawn without a texture.
var categoryColors = map[string]color.RGBA{
	"plastic": {R: 255, G: 0, B: 0, A: 255},
	"metal":   {R: 128, G: 128, B: 128, A: 255},
	"glass":   {R: 120, G: 200, B: 170, A: 255},
	"paper":   {R: 210, G: 180, B: 140, A: 255},
	"mixed":   {R: 160, G: 90, B: 200, A: 255},
	"organic": {R: 0, G: 255, B: 0, A: 255},
}

// CategoryColor returns the placeholder colour for a trash category. Unknown
// categories are white.
func CategoryColor(category string) color.RGBA {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
