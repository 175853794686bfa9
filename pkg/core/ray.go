package core

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrInvalidOrigin    = errors.New("core: ray origin must be a homogeneous point (x, y, z, 1)")
	ErrInvalidDirection = errors.New("core: ray direction must be a homogeneous vector (x, y, z, 0)")
)

// Ray is the parametric line Origin + t*Direction in homogeneous coordinates.
// Origin has w=1 and Direction has w=0.
type Ray struct {
	Origin    mgl64.Vec4
	Direction mgl64.Vec4
	Inside    bool // Whether the ray travels through the interior of a sphere
}

// NewRay creates a ray from a world-space point and direction
func NewRay(origin, direction mgl64.Vec3) Ray {
	return Ray{
		Origin:    origin.Vec4(1),
		Direction: direction.Vec4(0),
	}
}

// NewRayFromSlices builds a ray from raw homogeneous components. Both slices must
// carry exactly four components with the matching w; nothing is padded. The
// direction must be non-zero.
func NewRayFromSlices(origin, direction []float64) (Ray, error) {
	if len(origin) != 4 || origin[3] != 1 {
		return Ray{}, fmt.Errorf("%w: got %v", ErrInvalidOrigin, origin)
	}
	if len(direction) != 4 || direction[3] != 0 {
		return Ray{}, fmt.Errorf("%w: got %v", ErrInvalidDirection, direction)
	}
	if direction[0] == 0 && direction[1] == 0 && direction[2] == 0 {
		return Ray{}, fmt.Errorf("%w: direction has zero length", ErrInvalidDirection)
	}

	return Ray{
		Origin:    mgl64.Vec4{origin[0], origin[1], origin[2], 1},
		Direction: mgl64.Vec4{direction[0], direction[1], direction[2], 0},
	}, nil
}

// WithInside returns a copy of the ray with the inside flag replaced
func (r Ray) WithInside(inside bool) Ray {
	r.Inside = inside
	return r
}

// At returns the homogeneous point at parameter t
func (r Ray) At(t float64) mgl64.Vec4 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// PointAt returns the world-space point at parameter t
func (r Ray) PointAt(t float64) mgl64.Vec3 {
	return r.At(t).Vec3()
}

// Distance returns the euclidean distance travelled from the origin to parameter t
func (r Ray) Distance(t float64) float64 {
	return r.PointAt(t).Sub(r.OriginVec3()).Len()
}

// OriginVec3 drops the w component of the origin
func (r Ray) OriginVec3() mgl64.Vec3 {
	return r.Origin.Vec3()
}

// DirectionVec3 drops the w component of the direction
func (r Ray) DirectionVec3() mgl64.Vec3 {
	return r.Direction.Vec3()
}

// Inverted returns the ray pointing the opposite way from the same origin
func (r Ray) Inverted() Ray {
	return Ray{
		Origin:    r.Origin,
		Direction: mgl64.Vec4{-r.Direction[0], -r.Direction[1], -r.Direction[2], 0},
		Inside:    r.Inside,
	}
}

// Transform maps the ray through a 4x4 homogeneous transform
func (r Ray) Transform(m mgl64.Mat4) Ray {
	return Ray{
		Origin:    m.Mul4x1(r.Origin),
		Direction: m.Mul4x1(r.Direction),
		Inside:    r.Inside,
	}
}
