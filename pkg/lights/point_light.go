package lights

import "github.com/go-gl/mathgl/mgl64"

// PointLight is an infinitesimal light with its intensity folded into Color
type PointLight struct {
	Position mgl64.Vec3
	Color    mgl64.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, color mgl64.Vec3) PointLight {
	return PointLight{Position: position, Color: color}
}

// DirectionFrom returns the unit direction from point toward the light and the distance to it
func (l PointLight) DirectionFrom(point mgl64.Vec3) (mgl64.Vec3, float64) {
	offset := l.Position.Sub(point)
	distance := offset.Len()
	return offset.Mul(1 / distance), distance
}
