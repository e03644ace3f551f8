// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies RGB channels by k, clamping to 255. Alpha is kept.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * k
		if f > 255 {
			return 255
		}
		if f < 0 {
			return 0
		}
		return uint8(f)
	}
	return color.RGBA{
		R: scale(c.R),
		G: scale(c.G),
		B: scale(c.B),
		A: c.A,
	}
}
