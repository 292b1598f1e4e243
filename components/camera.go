package components

import (
	"github.com/automoto/starfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is a vertical scroll offset over a world of fixed height.
type CameraData struct {
	Offset      float64
	ViewWidth   float64
	ViewHeight  float64
	WorldHeight float64
}

// MaxOffset is the largest offset that keeps the viewport inside the world.
func (c *CameraData) MaxOffset() float64 {
	if m := c.WorldHeight - c.ViewHeight; m > 0 {
		return m
	}
	return 0
}

// SetOffset moves the camera, clamped to [0, MaxOffset].
func (c *CameraData) SetOffset(y float64) {
	c.Offset = gamemath.Clamp(y, 0, c.MaxOffset())
}

// Follow eases the camera toward keeping targetY at anchor (a fraction of the
// viewport height) and clamps the result.
func (c *CameraData) Follow(targetY, anchor, smoothing float64) {
	goal := gamemath.Clamp(targetY-c.ViewHeight*anchor, 0, c.MaxOffset())
	c.SetOffset(gamemath.Lerp(c.Offset, goal, smoothing))
}

// Visible reports whether a world point lies within one viewport extent of
// the visible rectangle. Things outside it are culled from collision and
// discarded from projectile pools.
func (c *CameraData) Visible(x, y float64) bool {
	return x > -c.ViewWidth && x < 2*c.ViewWidth &&
		y > c.Offset-c.ViewHeight && y < c.Offset+2*c.ViewHeight
}

// OnScreen reports whether a world-space box intersects the viewport itself.
func (c *CameraData) OnScreen(x, y, w, h float64) bool {
	return gamemath.Overlaps(x, y, w, h, 0, c.Offset, c.ViewWidth, c.ViewHeight)
}

// ToScreen converts a world y to a screen y.
func (c *CameraData) ToScreen(y float64) float64 {
	return y - c.Offset
}

var Camera = donburi.NewComponentType[CameraData]()
