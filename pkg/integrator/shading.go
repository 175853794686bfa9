package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/go-gl/mathgl/mgl64"
)

// Shade evaluates local Phong illumination at hit against every light, casting a
// shadow ray per light. The result is not clamped; alpha is 1.
func Shade(hit geometry.Intersection, pointLights []lights.PointLight, spheres []*geometry.Sphere) core.Color {
	m := hit.Sphere.Material
	point := hit.Point()
	n := hit.Normal.Normalize()
	v := hit.ViewDirection()

	// Ambient term is independent of the lights
	color := m.Albedo.Mul(m.Ambient)
	for _, light := range pointLights {
		l, lightDistance := light.DirectionFrom(point)
		nl := n.Dot(l)
		if inShadow(point, l, nl, lightDistance, spheres) {
			continue
		}

		// Lambertian diffuse
		if nl > 0 {
			color = color.Add(core.MultiplyRGB(light.Color, m.Albedo).Mul(m.Diffuse * nl))
		}

		// Phong specular: mirror the light direction about the normal and compare with the view
		r := n.Mul(2 * nl).Sub(l).Normalize()
		if rv := r.Dot(v); rv > 0 {
			color = color.Add(light.Color.Mul(m.Specular * math.Pow(rv, m.Shininess)))
		}
	}

	return core.Opaque(color)
}

// inShadow reports whether the light is behind the surface or blocked by a sphere closer than the light
func inShadow(point, toLight mgl64.Vec3, nl, lightDistance float64, spheres []*geometry.Sphere) bool {
	if nl < 0 {
		return true
	}

	shadowRay := core.NewRay(point, toLight)
	blocker := geometry.NearestHit(spheres, shadowRay, SecondaryMinDistance)
	return blocker.Hit() && blocker.TravelDistance() < lightDistance
}
