package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// grazingCosine is the |I·N| at or below which refraction is treated as undefined
const grazingCosine = 0.01

// Intersection is the nearest-hit record of a ray against a set of spheres
type Intersection struct {
	Distance float64    // Ray parameter of the hit, +Inf when nothing was hit
	Sphere   *Sphere    // Hit sphere, nil when nothing was hit
	Normal   mgl64.Vec3 // World-space normal, oriented against the incoming ray
	Ray      core.Ray   // Ray that produced the hit
}

// NoHit returns the empty accumulator for a nearest-hit scan of ray
func NoHit(ray core.Ray) Intersection {
	return Intersection{Distance: math.Inf(1), Ray: ray}
}

// Hit reports whether a sphere was struck
func (i Intersection) Hit() bool {
	return i.Sphere != nil
}

// Point returns the world-space hit point
func (i Intersection) Point() mgl64.Vec3 {
	return i.Ray.PointAt(i.Distance)
}

// TravelDistance returns the euclidean distance from the ray origin to the hit point
func (i Intersection) TravelDistance() float64 {
	return i.Ray.Distance(i.Distance)
}

// ViewDirection returns the unit vector from the hit point back to the ray origin
func (i Intersection) ViewDirection() mgl64.Vec3 {
	return i.Ray.OriginVec3().Sub(i.Point()).Normalize()
}

// ReflectedRay mirrors the view direction about the normal
func (i Intersection) ReflectedRay() core.Ray {
	v := i.ViewDirection()
	n := i.Normal.Normalize()
	direction := n.Mul(2 * n.Dot(v)).Sub(v).Normalize()

	return core.NewRay(i.Point(), direction)
}

// RefractedRay bends the incoming ray through the surface with Snell's law.
// It returns false at grazing incidence and on total internal reflection.
func (i Intersection) RefractedRay(policy RefractionPolicy) (core.Ray, bool) {
	incident := i.Ray.DirectionVec3().Normalize()
	n := i.Normal.Normalize()
	r := policy.Ratio(i.Ray, i.Sphere)

	cosI := incident.Dot(n)
	if math.Abs(cosI) <= grazingCosine {
		return core.Ray{}, false
	}

	c := -cosI
	cosTheta2 := 1 - r*r*(1-c*c)
	if cosTheta2 < 0 {
		return core.Ray{}, false
	}

	direction := incident.Mul(r).Add(n.Mul(r*c - math.Sqrt(cosTheta2)))
	return core.NewRay(i.Point(), direction), true
}

// NearestHit folds every sphere into a single nearest-hit record. On exactly
// equal distances the sphere that comes first wins.
func NearestHit(spheres []*Sphere, ray core.Ray, minDistance float64) Intersection {
	nearest := NoHit(ray)
	for _, sphere := range spheres {
		nearest = sphere.Intersect(ray, nearest, minDistance)
	}
	return nearest
}
