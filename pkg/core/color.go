package core

import "github.com/go-gl/mathgl/mgl64"

// Color is an RGBA color with float channels. Engine results are clamped to [0,1].
type Color = mgl64.Vec4

// TransparentBlack is the zero color, alpha included.
var TransparentBlack = Color{0, 0, 0, 0}

// NewColor creates an opaque color
func NewColor(r, g, b float64) Color {
	return Color{r, g, b, 1}
}

// Opaque lifts an RGB triple to an opaque color
func Opaque(rgb mgl64.Vec3) Color {
	return rgb.Vec4(1)
}

// MultiplyRGB returns the component-wise product of two RGB triples
func MultiplyRGB(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Modulate scales the RGB channels of c component-wise by rgb and forces alpha to 1
func Modulate(rgb mgl64.Vec3, c Color) Color {
	return Opaque(MultiplyRGB(rgb, c.Vec3()))
}

// Clamp01 clamps every channel, alpha included, to [0,1]
func Clamp01(c Color) Color {
	return Color{
		mgl64.Clamp(c[0], 0, 1),
		mgl64.Clamp(c[1], 0, 1),
		mgl64.Clamp(c[2], 0, 1),
		mgl64.Clamp(c[3], 0, 1),
	}
}

// Clamp01RGB clamps an RGB triple to [0,1]
func Clamp01RGB(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		mgl64.Clamp(v[0], 0, 1),
		mgl64.Clamp(v[1], 0, 1),
		mgl64.Clamp(v[2], 0, 1),
	}
}
