package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps pixels onto the near-plane window and into world space
type Camera struct {
	viewport      scene.Viewport
	cameraToWorld mgl64.Mat4
	origin        mgl64.Vec4
}

// NewCamera creates a camera for the viewport placed by cameraToWorld
func NewCamera(viewport scene.Viewport, cameraToWorld mgl64.Mat4) *Camera {
	return &Camera{
		viewport:      viewport,
		cameraToWorld: cameraToWorld,
		origin:        cameraToWorld.Mul4x1(mgl64.Vec4{0, 0, 0, 1}),
	}
}

// Direction returns the camera-space vector from the eye to pixel (ix, iy) on the near plane.
// iy counts up from the bottom edge.
func (c *Camera) Direction(ix, iy int) mgl64.Vec4 {
	v := c.viewport
	alpha := float64(ix) / float64(v.Width)
	beta := float64(iy) / float64(v.Height)

	return mgl64.Vec4{
		v.Left + alpha*(v.Right-v.Left),
		v.Bottom + beta*(v.Top-v.Bottom),
		-v.Near,
		0,
	}
}

// GetRay returns the world-space camera ray through pixel (ix, iy)
func (c *Camera) GetRay(ix, iy int) core.Ray {
	return core.Ray{
		Origin:    c.origin,
		Direction: c.cameraToWorld.Mul4x1(c.Direction(ix, iy)),
	}
}
