package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/background"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	create      func() *Scene
}

var builtins = map[string]SceneInfo{
	"spheres": {
		Name:        "spheres",
		Description: "Three Phong spheres lit by two lights",
		create:      NewSpheresScene,
	},
	"shadows": {
		Name:        "shadows",
		Description: "A small sphere casting a shadow onto a flattened ellipsoid floor",
		create:      NewShadowsScene,
	},
	"reflection": {
		Name:        "reflection",
		Description: "Mirror spheres reflecting each other over the lasers background",
		create:      NewReflectionScene,
	},
	"refraction": {
		Name:        "refraction",
		Description: "A glass sphere in front of colored spheres",
		create:      NewRefractionScene,
	},
}

// BuiltinNames lists the built-in scene names in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtins lists every built-in scene sorted by name
func Builtins() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, name := range BuiltinNames() {
		infos = append(infos, builtins[name])
	}
	return infos
}

// Builtin creates the named built-in scene
func Builtin(name string) (*Scene, error) {
	info, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown built-in scene %q", name)
	}
	return info.create(), nil
}

func phong(albedo mgl64.Vec3, kd, ks, n float64) geometry.Material {
	return geometry.Material{
		Albedo:          albedo,
		Ambient:         0.1,
		Diffuse:         kd,
		Specular:        ks,
		Shininess:       n,
		RefractiveIndex: 1,
	}
}

// NewSpheresScene creates three colored spheres with no secondary rays
func NewSpheresScene() *Scene {
	s := New()
	s.Viewport.Width, s.Viewport.Height = 256, 256
	s.BackgroundColor = core.NewColor(0.2, 0.3, 0.5)
	s.Ambient = mgl64.Vec3{0.3, 0.3, 0.3}

	s.AddSphere(mgl64.Vec3{-1.5, 0, -6}, mgl64.Vec3{1, 1, 1}, phong(mgl64.Vec3{0.9, 0.2, 0.2}, 0.8, 0.4, 20))
	s.AddSphere(mgl64.Vec3{1.5, 0, -6}, mgl64.Vec3{1, 1, 1}, phong(mgl64.Vec3{0.2, 0.9, 0.2}, 0.8, 0.6, 80))
	s.AddSphere(mgl64.Vec3{0, 0.5, -9}, mgl64.Vec3{1.5, 0.75, 1}, phong(mgl64.Vec3{0.2, 0.2, 0.9}, 0.9, 0.2, 10))

	s.AddLight(mgl64.Vec3{5, 5, 0}, mgl64.Vec3{0.9, 0.9, 0.9})
	s.AddLight(mgl64.Vec3{-5, 3, -2}, mgl64.Vec3{0.4, 0.4, 0.6})
	return s
}

// NewShadowsScene creates a sphere hovering above a flat ellipsoid that catches its shadow
func NewShadowsScene() *Scene {
	s := New()
	s.Viewport.Width, s.Viewport.Height = 256, 256
	s.Ambient = mgl64.Vec3{0.2, 0.2, 0.2}

	s.AddSphere(mgl64.Vec3{0, -2, -8}, mgl64.Vec3{6, 0.2, 6}, phong(mgl64.Vec3{0.8, 0.8, 0.8}, 0.9, 0, 1))
	s.AddSphere(mgl64.Vec3{0, 0, -7}, mgl64.Vec3{0.8, 0.8, 0.8}, phong(mgl64.Vec3{0.9, 0.5, 0.1}, 0.7, 0.5, 40))

	s.AddLight(mgl64.Vec3{0, 10, -7}, mgl64.Vec3{1, 1, 1})
	return s
}

// NewReflectionScene creates mirrored spheres over a procedural background
func NewReflectionScene() *Scene {
	s := New()
	s.Viewport.Width, s.Viewport.Height = 256, 256
	s.Background = background.Lasers
	s.Ambient = mgl64.Vec3{0.5, 0.5, 0.5}

	mirror := phong(mgl64.Vec3{0.9, 0.9, 0.9}, 0.1, 0.8, 100)
	mirror.Ambient = 0
	mirror.Reflect = 0.9

	s.AddSphere(mgl64.Vec3{-1.1, 0, -6}, mgl64.Vec3{1, 1, 1}, mirror)
	s.AddSphere(mgl64.Vec3{1.1, 0, -6}, mgl64.Vec3{1, 1, 1}, mirror)
	s.AddSphere(mgl64.Vec3{0, 1.6, -7}, mgl64.Vec3{0.6, 0.6, 0.6}, phong(mgl64.Vec3{0.9, 0.3, 0.1}, 0.8, 0.3, 20))

	s.AddLight(mgl64.Vec3{0, 5, -2}, mgl64.Vec3{0.8, 0.8, 0.8})
	return s
}

// NewRefractionScene creates a glass sphere in front of colored spheres
func NewRefractionScene() *Scene {
	s := New()
	s.Viewport.Width, s.Viewport.Height = 256, 256
	s.Background = background.Waves
	s.Ambient = mgl64.Vec3{0.4, 0.4, 0.4}

	glass := phong(mgl64.Vec3{1, 1, 1}, 0, 0.6, 200)
	glass.Ambient = 0
	glass.Reflect = 0.1
	glass.Refract = 0.9
	glass.RefractiveIndex = 1.1

	s.AddSphere(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{1.2, 1.2, 1.2}, glass)
	s.AddSphere(mgl64.Vec3{-1.5, 0, -10}, mgl64.Vec3{1, 1, 1}, phong(mgl64.Vec3{0.9, 0.2, 0.2}, 0.8, 0.3, 20))
	s.AddSphere(mgl64.Vec3{1.5, 0, -10}, mgl64.Vec3{1, 1, 1}, phong(mgl64.Vec3{0.2, 0.2, 0.9}, 0.8, 0.3, 20))

	s.AddLight(mgl64.Vec3{3, 4, 0}, mgl64.Vec3{1, 1, 1})
	return s
}
