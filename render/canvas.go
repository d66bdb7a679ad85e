package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws onto an ebiten image in screen coordinates. It implements
// mode.Canvas.
type Canvas struct {
	dst   *ebiten.Image
	pixel *ebiten.Image
}

func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

func (c *Canvas) Fill(x, y, w, h float64, clr color.Color) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *Canvas) Label(text string, x, y int) {
	ebitenutil.DebugPrintAt(c.dst, text, x, y)
}

// FillTinted fills a square of base colour scaled by tint.
func (c *Canvas) FillTinted(x, y, size float64, base color.Color, tint ebiten.ColorScale) {
	if c.pixel == nil {
		c.pixel = ebiten.NewImage(1, 1)
		c.pixel.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(base)
	op.ColorScale.ScaleWithColorScale(tint)
	c.dst.DrawImage(c.pixel, op)
}
