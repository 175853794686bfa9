package integrator

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Trace returns the clamped color seen along ray at the given recursion depth.
	// Camera rays start at depth 0.
	Trace(ray core.Ray, depth int) core.Color
}
