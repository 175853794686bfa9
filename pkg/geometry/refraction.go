package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RefractionPolicy picks the relative refractive index used when a ray crosses a sphere surface
type RefractionPolicy int

const (
	// RawIndex always uses the sphere's refractive index as the ratio
	RawIndex RefractionPolicy = iota
	// EntryExit uses 1/index when entering a sphere and index when leaving it
	EntryExit
)

// Ratio returns the eta used by Snell's law for ray hitting sphere
func (p RefractionPolicy) Ratio(ray core.Ray, sphere *Sphere) float64 {
	index := sphere.RefractiveIndex
	if p == EntryExit && !ray.Inside {
		return 1 / index
	}
	return index
}

func (p RefractionPolicy) String() string {
	switch p {
	case RawIndex:
		return "raw"
	case EntryExit:
		return "entry-exit"
	default:
		return fmt.Sprintf("RefractionPolicy(%d)", int(p))
	}
}

// ParseRefractionPolicy maps a policy name back to its value
func ParseRefractionPolicy(name string) (RefractionPolicy, error) {
	switch name {
	case "raw", "":
		return RawIndex, nil
	case "entry-exit":
		return EntryExit, nil
	default:
		return RawIndex, fmt.Errorf("geometry: unknown refraction policy %q", name)
	}
}
