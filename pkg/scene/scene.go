package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/background"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrInvalidResolution = errors.New("scene: resolution must be positive")
	ErrInvalidViewport   = errors.New("scene: viewport bounds are degenerate")
	ErrInvalidSphere     = errors.New("scene: sphere radii must be non-zero")
)

// Viewport describes the near-plane window and the pixel grid mapped onto it
type Viewport struct {
	Near   float64
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
	Width  int
	Height int
}

// DefaultViewport returns the viewport used when a scene does not set one
func DefaultViewport() Viewport {
	return Viewport{
		Near:   1,
		Left:   -1,
		Right:  1,
		Bottom: -1,
		Top:    1,
		Width:  32,
		Height: 32,
	}
}

// Validate reports whether the viewport can be rendered
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidResolution, v.Width, v.Height)
	}
	if v.Near <= 0 || v.Left == v.Right || v.Bottom == v.Top {
		return fmt.Errorf("%w: near=%g left=%g right=%g bottom=%g top=%g",
			ErrInvalidViewport, v.Near, v.Left, v.Right, v.Bottom, v.Top)
	}
	return nil
}

// Scene is the read-only view the tracer renders. It must not be modified while a frame is in flight.
type Scene struct {
	Spheres         []*geometry.Sphere
	Lights          []lights.PointLight
	Ambient         mgl64.Vec3
	BackgroundColor core.Color
	Background      background.Mode
	Viewport        Viewport
	CameraToWorld   mgl64.Mat4
}

// New creates an empty scene with the default viewport, ambient term and camera
func New() *Scene {
	return &Scene{
		Spheres:         make([]*geometry.Sphere, 0),
		Lights:          make([]lights.PointLight, 0),
		Ambient:         mgl64.Vec3{0.1, 0.1, 0.1},
		BackgroundColor: core.NewColor(0, 0, 0),
		Background:      background.Color,
		Viewport:        DefaultViewport(),
		CameraToWorld:   mgl64.Ident4(),
	}
}

// AddSphere appends a sphere built from a scene tuple
func (s *Scene) AddSphere(center, radii mgl64.Vec3, material geometry.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radii, material)
	s.Spheres = append(s.Spheres, sphere)
	return sphere
}

// AddLight appends a point light
func (s *Scene) AddLight(position, color mgl64.Vec3) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color))
}

// LookAt places the camera at eye looking toward center
func (s *Scene) LookAt(eye, center, up mgl64.Vec3) {
	s.CameraToWorld = mgl64.LookAtV(eye, center, up).Inv()
}

// Validate checks the scene for values that would produce NaN colors
func (s *Scene) Validate() error {
	if err := s.Viewport.Validate(); err != nil {
		return err
	}
	for i, sphere := range s.Spheres {
		if sphere.Radii[0] == 0 || sphere.Radii[1] == 0 || sphere.Radii[2] == 0 {
			return fmt.Errorf("%w: sphere %d has radii %v", ErrInvalidSphere, i, sphere.Radii)
		}
	}
	return nil
}
