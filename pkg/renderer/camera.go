package renderer

import "github.com/anovak/go-parallel-render/pkg/core"

// Camera holds the precomputed orthonormal screen basis for one render
// request: eye position, screen axes, and the upper-left screen corner.
type Camera struct {
	eye           core.Vec3
	xAxis, yAxis  core.Vec3
	corner        core.Vec3
	horizontal    float64
	vertical      float64
	width, height int
}

// NewCamera computes the screen basis from the eye position, the view point,
// the view-up vector and the horizontal/vertical extents of the screen
func NewCamera(eye, view, viewUp core.Vec3, horizontal, vertical float64, width, height int) *Camera {
	zAxis := view.Subtract(eye).Normalize()
	up := viewUp.Normalize()
	yAxis := up.Subtract(zAxis.Multiply(zAxis.Dot(up))).Normalize()
	xAxis := zAxis.Cross(yAxis).Normalize()
	corner := view.Subtract(xAxis.Multiply(horizontal / 2)).Add(yAxis.Multiply(vertical / 2))

	return &Camera{
		eye:        eye,
		xAxis:      xAxis,
		yAxis:      yAxis,
		corner:     corner,
		horizontal: horizontal,
		vertical:   vertical,
		width:      width,
		height:     height,
	}
}

// RayThrough returns the view ray from the eye through pixel (x, y). The
// screen point is the corner offset along the horizontal and vertical basis
// vectors.
func (c *Camera) RayThrough(x, y int) core.Ray {
	screenPoint := c.corner.
		Add(c.xAxis.Multiply(c.horizontal * float64(x) / float64(c.width-1))).
		Subtract(c.yAxis.Multiply(c.vertical * float64(y) / float64(c.height-1)))
	return core.RayFromPoints(c.eye, screenPoint)
}
