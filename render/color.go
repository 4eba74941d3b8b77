package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette (Tokyo Night background)
var (
	ColorBackground = colorful.Color{R: 26.0 / 255, G: 27.0 / 255, B: 38.0 / 255}
	ColorSun        = colorful.Color{R: 1, G: 0.85, B: 0.3}
	ColorOutline    = colorful.Color{R: 0.25, G: 0.27, B: 0.38}
	ColorStatus     = colorful.Color{R: 0.66, G: 0.69, B: 0.84}
	ColorSpinMark   = colorful.Color{R: 1, G: 1, B: 1}
)

// Fade blends c toward the background by opacity in [0, 1]
// Opacity 1 returns c, 0 returns the background
func Fade(c colorful.Color, opacity float64) colorful.Color {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return ColorBackground
	}
	return ColorBackground.BlendRgb(c, opacity).Clamped()
}

// Scale multiplies each channel by f, for emphasis on explosion centers
func Scale(c colorful.Color, f float64) colorful.Color {
	return colorful.Color{R: c.R * f, G: c.G * f, B: c.B * f}.Clamped()
}

// ToTcell converts a colorful color to a 24-bit tcell color
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
