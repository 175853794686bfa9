package renderer

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// Options contains rendering configuration
type Options struct {
	Workers int               // Parallel scanline workers, 0 means one per CPU
	Tracer  integrator.Config // Recursion depth and secondary-ray policies
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Workers: 0,
		Tracer:  integrator.DefaultConfig(),
	}
}

// Renderer traces one camera ray per pixel of a frozen scene
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator integrator.Integrator
	options    Options
}

// NewRenderer creates a renderer using the Whitted tracer
func NewRenderer(s *scene.Scene, options Options) (*Renderer, error) {
	if s == nil {
		return nil, ErrSceneNotDefined
	}
	return NewRendererWithIntegrator(s, integrator.NewTracer(s, options.Tracer), options)
}

// NewRendererWithIntegrator creates a renderer driven by a custom integrator
func NewRendererWithIntegrator(s *scene.Scene, integ integrator.Integrator, options Options) (*Renderer, error) {
	if s == nil {
		return nil, ErrSceneNotDefined
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{
		scene:      s,
		camera:     NewCamera(s.Viewport, s.CameraToWorld),
		integrator: integ,
		options:    options,
	}, nil
}

// RenderFrame traces every pixel of the frame. The scene must not change until it returns.
func (r *Renderer) RenderFrame(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width, height := r.scene.Viewport.Width, r.scene.Viewport.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	start := time.Now()
	pool := NewWorkerPool(func(row int) { r.renderRow(img, row) }, height, r.options.Workers)
	pool.Start(ctx)

	logger.Debugf("rendering %dx%d frame with %d workers", width, height, pool.GetNumWorkers())

	for iy := 0; iy < height; iy++ {
		pool.SubmitTask(RowTask{Row: iy, TaskID: iy})
	}
	pool.Stop()

	stats := RenderStats{
		Width:         width,
		Height:        height,
		Workers:       pool.GetNumWorkers(),
		RowsPerWorker: make([]int, pool.GetNumWorkers()),
	}

	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		stats.RowsPerWorker[result.WorkerID]++
		stats.PrimaryRays += width
	}
	stats.RenderTime = time.Since(start)

	if renderErr != nil {
		return nil, stats, renderErr
	}

	stats.AverageLuminance = CalculateAverageLuminance(img)
	logger.Infof("rendered %dx%d frame in %s", width, height, stats.RenderTime)
	return img, stats, nil
}

// renderRow traces scanline iy, counted from the bottom of the frame
func (r *Renderer) renderRow(img *image.RGBA, iy int) {
	height := r.scene.Viewport.Height
	for ix := 0; ix < r.scene.Viewport.Width; ix++ {
		ray := r.camera.GetRay(ix, iy)
		img.SetRGBA(ix, height-1-iy, colorToRGBA(r.integrator.Trace(ray, 0)))
	}
}

// colorToRGBA converts a clamped engine color to 8-bit RGBA
func colorToRGBA(c core.Color) color.RGBA {
	c = core.Clamp01(c)
	return color.RGBA{
		R: uint8(255.9 * c[0]),
		G: uint8(255.9 * c[1]),
		B: uint8(255.9 * c[2]),
		A: 255,
	}
}

// WritePNG encodes a rendered frame as PNG
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
