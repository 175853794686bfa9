// Package background holds the pure functions that color rays which strike no geometry.
package background

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects one of the background functions
type Mode int

const (
	Color Mode = iota
	Waves
	Lasers
	Mixture
	RayDirection
)

// Func maps a missed ray to a color. distance is the travelled distance, +Inf for a miss.
type Func func(ray core.Ray, distance float64, backgroundColor core.Color) core.Color

var functions = map[Mode]Func{
	Color:        flatColor,
	Waves:        waves,
	Lasers:       lasers,
	Mixture:      mixture,
	RayDirection: rayDirection,
}

var names = map[Mode]string{
	Color:        "color",
	Waves:        "waves",
	Lasers:       "lasers",
	Mixture:      "mixture",
	RayDirection: "ray_direction",
}

// Modes returns every mode in declaration order
func Modes() []Mode {
	return []Mode{Color, Waves, Lasers, Mixture, RayDirection}
}

func (m Mode) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a published background name to its mode
func ParseMode(name string) (Mode, error) {
	for mode, modeName := range names {
		if modeName == name {
			return mode, nil
		}
	}
	return Color, fmt.Errorf("background: unknown background function %q", name)
}

// Lookup returns the function registered for mode
func Lookup(mode Mode) (Func, bool) {
	fn, ok := functions[mode]
	return fn, ok
}

// Evaluate runs the function registered for mode, or the flat background color for unknown modes
func Evaluate(mode Mode, ray core.Ray, distance float64, backgroundColor core.Color) core.Color {
	fn, ok := functions[mode]
	if !ok {
		fn = flatColor
	}
	return fn(ray, distance, backgroundColor)
}

func flatColor(_ core.Ray, _ float64, backgroundColor core.Color) core.Color {
	return backgroundColor
}

func waves(ray core.Ray, _ float64, _ core.Color) core.Color {
	x, y, z := ray.Direction[0], ray.Direction[1], ray.Direction[2]
	channel := func(a, b, c float64) float64 {
		return 0.5*math.Pow(math.Sin(2*a), 4) + math.Abs(0.5*math.Cos(8*a+math.Sin(10*b)+math.Sin(10*c)))
	}
	return core.NewColor(channel(x, y, z), channel(y, x, z), channel(z, y, x))
}

func lasers(ray core.Ray, _ float64, _ core.Color) core.Color {
	// acos is only defined on [-1,1]; camera rays are not unit length
	u := math.Acos(mgl64.Clamp(ray.Direction[0], -1, 1))
	v := math.Atan2(ray.Direction[1], ray.Direction[2])
	return core.NewColor(
		1+0.5*math.Cos(math.Floor(20*u)),
		1+0.5*math.Cos(math.Floor(20*v)),
		1+0.5*math.Cos(math.Floor(8*u)),
	)
}

func mixture(ray core.Ray, distance float64, backgroundColor core.Color) core.Color {
	w := waves(ray, distance, backgroundColor)
	l := lasers(ray, distance, backgroundColor)
	return core.Opaque(core.MultiplyRGB(w.Vec3(), l.Vec3()))
}

func rayDirection(ray core.Ray, _ float64, _ core.Color) core.Color {
	return core.NewColor(math.Abs(ray.Direction[0]), math.Abs(ray.Direction[1]), math.Abs(ray.Direction[2]))
}
