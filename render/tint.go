// Package render draws the simulation top-down with ebiten and runs the
// modes' render hooks.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Tint turns a packed ARGB ColorMultiplier result into a colour scale. Zero
// means no tint.
func Tint(argb uint32) ebiten.ColorScale {
	var cs ebiten.ColorScale
	if argb == 0 {
		return cs
	}
	cs.ScaleWithColor(Unpack(argb))
	return cs
}

func Unpack(argb uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}
