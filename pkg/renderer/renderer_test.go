package renderer

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"sync/atomic"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
)

// MockIntegrator implements integrator.Integrator for testing
type MockIntegrator struct {
	traceFn func(ray core.Ray, depth int) core.Color
	calls   atomic.Int64
}

func (m *MockIntegrator) Trace(ray core.Ray, depth int) core.Color {
	m.calls.Add(1)
	return m.traceFn(ray, depth)
}

func smallScene(width, height int) *scene.Scene {
	s := scene.New()
	s.Viewport.Width, s.Viewport.Height = width, height
	return s
}

func TestRenderer_PixelOrientation(t *testing.T) {
	s := smallScene(4, 2)
	mock := &MockIntegrator{traceFn: func(ray core.Ray, depth int) core.Color {
		if depth != 0 {
			t.Errorf("Expected camera rays at depth 0, got %d", depth)
		}
		// Red for the left half, green for the bottom half
		d := ray.DirectionVec3()
		r, g := 0.0, 0.0
		if d.X() < 0 {
			r = 1
		}
		if d.Y() < 0 {
			g = 1
		}
		return core.NewColor(r, g, 0)
	}}

	r, err := NewRendererWithIntegrator(s, mock, Options{Workers: 2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, stats, err := r.RenderFrame(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if mock.calls.Load() != 8 || stats.PrimaryRays != 8 {
		t.Errorf("Expected 8 primary rays, got %d traced and %d counted", mock.calls.Load(), stats.PrimaryRays)
	}

	// Scanline 0 is the bottom of the viewport and lands on the last image row
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 255, 0, 255}) {
		t.Errorf("Expected bottom-left pixel yellow, got %v", got)
	}
	if got := img.RGBAAt(3, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected top-right pixel black, got %v", got)
	}

	rows := 0
	for _, n := range stats.RowsPerWorker {
		rows += n
	}
	if rows != 2 {
		t.Errorf("Expected 2 rows across workers, got %v", stats.RowsPerWorker)
	}
}

func TestRenderer_ParallelMatchesSequential(t *testing.T) {
	s, err := scene.Builtin("refraction")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	s.Viewport.Width, s.Viewport.Height = 40, 30

	render := func(workers int) []byte {
		options := DefaultOptions()
		options.Workers = workers
		r, err := NewRenderer(s, options)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		img, _, err := r.RenderFrame(context.Background())
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return img.Pix
	}

	sequential := render(1)
	for _, workers := range []int{2, 7} {
		if !bytes.Equal(sequential, render(workers)) {
			t.Errorf("Expected %d-worker render to match the sequential render", workers)
		}
	}
}

func TestRenderer_DiffuseSphereIsVisible(t *testing.T) {
	s := smallScene(16, 16)
	s.Ambient = mgl64.Vec3{0, 0, 0}
	s.AddSphere(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{1, 1, 1}, geometry.Material{Albedo: mgl64.Vec3{1, 1, 1}, Diffuse: 1})
	s.AddLight(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	r, err := NewRenderer(s, DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, stats, err := r.RenderFrame(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Center pixel faces the light head on, corners see the black background
	if got := img.RGBAAt(8, 7); got.R < 250 {
		t.Errorf("Expected a bright center pixel, got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected a black corner, got %v", got)
	}
	if stats.AverageLuminance <= 0 || stats.AverageLuminance >= 1 {
		t.Errorf("Expected partial luminance, got %f", stats.AverageLuminance)
	}
}

func TestRenderer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewRenderer(smallScene(8, 8), DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, _, err := r.RenderFrame(ctx); !errors.Is(err, ErrInterrupted) {
		t.Errorf("Expected ErrInterrupted, got %v", err)
	}
}

func TestNewRenderer_Errors(t *testing.T) {
	if _, err := NewRenderer(nil, DefaultOptions()); !errors.Is(err, ErrSceneNotDefined) {
		t.Errorf("Expected ErrSceneNotDefined, got %v", err)
	}
	if _, err := NewRenderer(smallScene(0, 4), DefaultOptions()); !errors.Is(err, scene.ErrInvalidResolution) {
		t.Errorf("Expected ErrInvalidResolution, got %v", err)
	}
}

func TestColorToRGBA(t *testing.T) {
	tests := []struct {
		name     string
		input    core.Color
		expected color.RGBA
	}{
		{"white", core.NewColor(1, 1, 1), color.RGBA{255, 255, 255, 255}},
		{"half", core.NewColor(0.5, 0.5, 0.5), color.RGBA{127, 127, 127, 255}},
		{"out of range", core.Color{-1, 2, 0, 0}, color.RGBA{0, 255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorToRGBA(tt.input); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	r, err := NewRenderer(smallScene(5, 3), DefaultOptions())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	img, _, err := r.RenderFrame(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 5 || decoded.Bounds().Dy() != 3 {
		t.Errorf("Expected 5x3 image, got %v", decoded.Bounds())
	}
}

var _ integrator.Integrator = (*MockIntegrator)(nil)
