package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Material holds the fixed Phong, reflection and refraction coefficients of a sphere
type Material struct {
	Albedo          mgl64.Vec3 // Surface color
	Ambient         float64    // k_a
	Diffuse         float64    // k_d
	Specular        float64    // k_s
	Shininess       float64    // Phong exponent n
	Reflect         float64    // k_r, weight of the mirror bounce
	Refract         float64    // Weight of the transmitted ray
	RefractiveIndex float64
}

// Sphere is the unit sphere deformed by a translate+scale transform
type Sphere struct {
	Center mgl64.Vec3
	Radii  mgl64.Vec3 // Per-axis scale, so ellipsoids are allowed
	Material

	WorldFromObject mgl64.Mat4
	ObjectFromWorld mgl64.Mat4
}

// NewSphere creates a sphere and derives its object/world transforms
func NewSphere(center, radii mgl64.Vec3, material Material) *Sphere {
	worldFromObject := mgl64.Translate3D(center[0], center[1], center[2]).
		Mul4(mgl64.Scale3D(radii[0], radii[1], radii[2]))

	return &Sphere{
		Center:          center,
		Radii:           radii,
		Material:        material,
		WorldFromObject: worldFromObject,
		ObjectFromWorld: worldFromObject.Inv(),
	}
}

// Intersect returns the nearer of current and this sphere's hit along ray at
// t > minDistance. It never returns a worse hit than current.
func (s *Sphere) Intersect(ray core.Ray, current Intersection, minDistance float64) Intersection {
	// Move the ray into object space, where the sphere is the unit sphere at the origin
	local := ray.Transform(s.ObjectFromWorld)
	origin := local.OriginVec3()
	direction := local.DirectionVec3()

	// a*t² + 2b*t + c = 0 against the unit sphere
	a := direction.Dot(direction)
	if a == 0 {
		return current
	}
	b := origin.Dot(direction)
	c := origin.Dot(origin) - 1
	discriminant := b*b - a*c

	// No real roots means the ray misses the sphere
	if discriminant < 0 {
		return current
	}

	// Both roots behind the window start
	sqrtD := math.Sqrt(discriminant)
	t1 := (-b + sqrtD) / a
	t2 := (-b - sqrtD) / a
	if t1 <= minDistance && t2 <= minDistance {
		return current
	}

	// Prefer the nearer root unless it falls before the window
	smaller, bigger := math.Min(t1, t2), math.Max(t1, t2)
	t := smaller
	if smaller <= minDistance {
		// Origin is inside the sphere: use the exit point
		t = bigger
	}

	// Only a strictly closer hit replaces the accumulator
	if current.Hit() && !(t < current.Distance) {
		return current
	}

	return Intersection{
		Distance: t,
		Sphere:   s,
		Normal:   s.normalAt(local.At(t), ray),
		Ray:      ray,
	}
}

// normalAt maps an object-space surface point to a world-space normal facing the ray
func (s *Sphere) normalAt(objectPoint mgl64.Vec4, ray core.Ray) mgl64.Vec3 {
	// Normals transform by the inverse transpose; drop w to keep a direction
	n := s.ObjectFromWorld.Transpose().Mul4x1(objectPoint)
	n[3] = 0
	normal := n.Vec3().Normalize()

	// Face the normal against the incoming ray
	if ray.DirectionVec3().Dot(normal) > 0 {
		normal = normal.Mul(-1)
	}
	return normal
}
