package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/parameter"
)

// Camera maps world coordinates onto a width×height cell grid
// Scale is world units per column; rows span CellAspect times that, y grows up in world space
type Camera struct {
	Center r2.Vec
	Scale  float64
}

// NewCamera returns a camera centered on the sun at scale 1
func NewCamera() *Camera {
	return &Camera{Scale: 1}
}

// Fit chooses the scale that shows radius around the center inside the viewport
func (c *Camera) Fit(radius float64, width, height int) {
	if radius <= 0 || width <= 0 || height <= 0 {
		return
	}
	halfW := float64(width) / 2 * parameter.CameraFitMargin
	halfH := float64(height) / 2 * parameter.CameraFitMargin * parameter.CellAspect
	c.Scale = clampScale(radius / math.Min(halfW, halfH))
}

// ZoomIn shows less of the world
func (c *Camera) ZoomIn() {
	c.Scale = clampScale(c.Scale / parameter.CameraZoomStep)
}

// ZoomOut shows more of the world
func (c *Camera) ZoomOut() {
	c.Scale = clampScale(c.Scale * parameter.CameraZoomStep)
}

// Project returns the cell containing p
func (c *Camera) Project(p r2.Vec, width, height int) (int, int) {
	fx := (p.X-c.Center.X)/c.Scale + float64(width)/2
	fy := float64(height)/2 - (p.Y-c.Center.Y)/(c.Scale*parameter.CellAspect)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// Unproject returns the world point at the center of cell x, y
func (c *Camera) Unproject(x, y, width, height int) r2.Vec {
	return r2.Vec{
		X: c.Center.X + (float64(x)+0.5-float64(width)/2)*c.Scale,
		Y: c.Center.Y - (float64(y)+0.5-float64(height)/2)*c.Scale*parameter.CellAspect,
	}
}

func clampScale(s float64) float64 {
	if math.IsNaN(s) || s < parameter.CameraMinScale {
		return parameter.CameraMinScale
	}
	if s > parameter.CameraMaxScale {
		return parameter.CameraMaxScale
	}
	return s
}
