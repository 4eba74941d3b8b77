package render

import "github.com/lucasb-eyer/go-colorful"

// BlendMode defines how a write composites over the existing foreground
type BlendMode uint8

const (
	// BlendReplace overwrites the cell
	BlendReplace BlendMode = iota
	// BlendAlpha mixes the new color over the old by alpha
	BlendAlpha
	// BlendMax keeps the brighter color, so overlapping fades do not darken each other
	BlendMax
)

// composite applies mode to dst with src at alpha
func composite(mode BlendMode, dst, src colorful.Color, alpha float64) colorful.Color {
	switch mode {
	case BlendAlpha:
		if alpha >= 1 {
			return src
		}
		if alpha <= 0 {
			return dst
		}
		return dst.BlendRgb(src, alpha).Clamped()
	case BlendMax:
		return colorful.Color{
			R: max(dst.R, src.R),
			G: max(dst.G, src.G),
			B: max(dst.B, src.B),
		}
	default:
		return src
	}
}
