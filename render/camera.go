package render

// Camera maps the world's XZ plane onto the screen.
type Camera struct {
	X, Z          float64
	Scale         float64
	Width, Height int
}

const defaultScale = 12

func (c Camera) scale() float64 {
	if c.Scale <= 0 {
		return defaultScale
	}
	return c.Scale
}

// ToScreen returns the pixel position of world (x, z).
func (c Camera) ToScreen(x, z float64) (float64, float64) {
	s := c.scale()
	return (x-c.X)*s + float64(c.Width)/2, (z-c.Z)*s + float64(c.Height)/2
}

// Visible reports whether the pixel lies on screen, with a margin of one
// block.
func (c Camera) Visible(sx, sy float64) bool {
	m := c.scale()
	return sx >= -m && sy >= -m && sx <= float64(c.Width)+m && sy <= float64(c.Height)+m
}
