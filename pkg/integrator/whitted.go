package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/background"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultMaxDepth is the recursion depth at which rays fall back to the background
	DefaultMaxDepth = 7

	// PrimaryMinDistance keeps camera rays from hitting geometry in front of the near plane
	PrimaryMinDistance = 1.0

	// SecondaryMinDistance keeps reflected, refracted and shadow rays off the surface they leave
	SecondaryMinDistance = 1e-4
)

// MissPolicy decides what a ray that strikes nothing returns
type MissPolicy int

const (
	// MissBackground returns ambient ⊙ background at every depth
	MissBackground MissPolicy = iota
	// MissFlatAmbient returns the flat ambient color for camera rays and transparent black deeper
	MissFlatAmbient
)

func (p MissPolicy) String() string {
	switch p {
	case MissBackground:
		return "background"
	case MissFlatAmbient:
		return "flat-ambient"
	default:
		return fmt.Sprintf("MissPolicy(%d)", int(p))
	}
}

// ParseMissPolicy maps a policy name back to its value
func ParseMissPolicy(name string) (MissPolicy, error) {
	switch name {
	case "background", "":
		return MissBackground, nil
	case "flat-ambient":
		return MissFlatAmbient, nil
	default:
		return MissBackground, fmt.Errorf("integrator: unknown miss policy %q", name)
	}
}

// Config contains the tracer settings
type Config struct {
	MaxDepth   int
	Refraction geometry.RefractionPolicy
	Miss       MissPolicy
}

// DefaultConfig returns the tracer defaults
func DefaultConfig() Config {
	return Config{
		MaxDepth:   DefaultMaxDepth,
		Refraction: geometry.RawIndex,
		Miss:       MissBackground,
	}
}

// Tracer implements Whitted recursive ray tracing over a read-only scene.
// It holds no mutable state, so one Tracer may serve many goroutines.
type Tracer struct {
	scene  *scene.Scene
	config Config

	visit func(ray core.Ray, depth int) // Test seam: observes every Trace call, nil in production
}

// NewTracer creates a tracer for the scene
func NewTracer(s *scene.Scene, config Config) *Tracer {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Tracer{scene: s, config: config}
}

// Config returns the effective tracer configuration
func (t *Tracer) Config() Config {
	return t.config
}

// Trace returns the color along ray, recursing into reflected and refracted rays
func (t *Tracer) Trace(ray core.Ray, depth int) core.Color {
	if t.visit != nil {
		t.visit(ray, depth)
	}

	if depth >= t.config.MaxDepth {
		return t.background(ray)
	}

	minDistance := SecondaryMinDistance
	if depth == 0 {
		minDistance = PrimaryMinDistance
	}

	hit := geometry.NearestHit(t.scene.Spheres, ray, minDistance)
	if !hit.Hit() {
		return t.miss(ray, depth)
	}

	surface := Shade(hit, t.scene.Lights, t.scene.Spheres).Vec3()
	complement := mgl64.Vec3{1, 1, 1}.Sub(core.Clamp01RGB(surface))

	m := hit.Sphere.Material
	var secondary mgl64.Vec3
	if m.Reflect != 0 {
		reflected := hit.ReflectedRay().WithInside(ray.Inside)
		secondary = secondary.Add(t.Trace(reflected, depth+1).Vec3().Mul(m.Reflect))
	}
	if m.Refract != 0 {
		if refracted, ok := hit.RefractedRay(t.config.Refraction); ok {
			refracted = refracted.WithInside(!ray.Inside)
			secondary = secondary.Add(t.Trace(refracted, depth+1).Vec3().Mul(m.Refract))
		}
	}

	return core.Clamp01(core.Opaque(surface.Add(core.MultiplyRGB(complement, secondary))))
}

func (t *Tracer) miss(ray core.Ray, depth int) core.Color {
	if t.config.Miss == MissFlatAmbient {
		if depth == 0 {
			return core.Clamp01(core.Opaque(t.scene.Ambient))
		}
		return core.TransparentBlack
	}
	return t.background(ray)
}

func (t *Tracer) background(ray core.Ray) core.Color {
	bg := background.Evaluate(t.scene.Background, ray, math.Inf(1), t.scene.BackgroundColor)
	return core.Clamp01(core.Modulate(t.scene.Ambient, bg))
}
