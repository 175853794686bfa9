package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/background"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/urfave/cli"
)

// RenderFlags are the flags accepted by the render command.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Usage: "text scene file to render",
	},
	cli.StringFlag{
		Name:  "builtin, b",
		Usage: "name of a built-in scene to render",
	},
	cli.StringFlag{
		Name:  "background",
		Usage: "override the scene background function",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width, 0 keeps the scene resolution",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height, 0 keeps the scene resolution",
	},
	cli.StringFlag{
		Name:  "out, o",
		Value: "frame.png",
		Usage: "image filename for the rendered frame",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of scanline workers, 0 uses one per CPU",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Value: integrator.DefaultMaxDepth,
		Usage: "maximum recursion depth for reflected and refracted rays",
	},
	cli.StringFlag{
		Name:  "refraction",
		Value: geometry.RawIndex.String(),
		Usage: "refraction ratio policy (raw or entry-exit)",
	},
	cli.StringFlag{
		Name:  "miss",
		Value: integrator.MissBackground.String(),
		Usage: "color returned by rays that hit nothing (background or flat-ambient)",
	},
	cli.StringFlag{
		Name:  "eye",
		Usage: "camera position as x,y,z",
	},
	cli.StringFlag{
		Name:  "look-at",
		Value: "0,0,-1",
		Usage: "point the camera looks at as x,y,z, used with --eye",
	},
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(sc, opts)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Infof("rendering %dx%d frame (max depth %d, refraction %s, miss %s)",
		sc.Viewport.Width, sc.Viewport.Height, opts.Tracer.MaxDepth, opts.Tracer.Refraction, opts.Tracer.Miss)
	frame, stats, err := r.RenderFrame(renderCtx)
	if err != nil {
		return err
	}

	imgFile := ctx.String("out")
	f, err := os.Create(imgFile)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", imgFile, err)
	}
	defer f.Close()

	if err := renderer.WritePNG(f, frame); err != nil {
		return fmt.Errorf("error encoding png file: %w", err)
	}
	logger.Noticef("wrote frame to %s", imgFile)

	// Display stats
	logger.Noticef("frame statistics\n%s", stats.Table())
	return nil
}

// loadScene builds the scene selected on the command line and applies the overrides.
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	var (
		sc  *scene.Scene
		err error
	)

	switch file, name := ctx.String("scene"), ctx.String("builtin"); {
	case file != "" && name != "":
		return nil, errors.New("--scene and --builtin are mutually exclusive")
	case file != "":
		sc, err = loaders.LoadScene(file)
	case name != "":
		sc, err = scene.Builtin(name)
	default:
		return nil, errors.New("missing --scene or --builtin argument")
	}
	if err != nil {
		return nil, err
	}

	if name := ctx.String("background"); name != "" {
		mode, err := background.ParseMode(name)
		if err != nil {
			return nil, err
		}
		sc.Background = mode
	}

	if w := ctx.Int("width"); w > 0 {
		sc.Viewport.Width = w
	}
	if h := ctx.Int("height"); h > 0 {
		sc.Viewport.Height = h
	}

	if ctx.String("eye") != "" {
		eye, err := parseVec3(ctx.String("eye"))
		if err != nil {
			return nil, fmt.Errorf("invalid --eye: %w", err)
		}
		center, err := parseVec3(ctx.String("look-at"))
		if err != nil {
			return nil, fmt.Errorf("invalid --look-at: %w", err)
		}
		sc.LookAt(eye, center, mgl64.Vec3{0, 1, 0})
	}

	return sc, nil
}

func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	opts := renderer.DefaultOptions()
	opts.Workers = ctx.Int("workers")
	if depth := ctx.Int("max-depth"); depth > 0 {
		opts.Tracer.MaxDepth = depth
	}

	refraction, err := geometry.ParseRefractionPolicy(ctx.String("refraction"))
	if err != nil {
		return opts, err
	}
	opts.Tracer.Refraction = refraction

	miss, err := integrator.ParseMissPolicy(ctx.String("miss"))
	if err != nil {
		return opts, err
	}
	opts.Tracer.Miss = miss

	return opts, nil
}

// parseVec3 parses a comma separated triple such as "0,1.5,-2".
func parseVec3(value string) (mgl64.Vec3, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("expected x,y,z; got %q", value)
	}

	var v mgl64.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return mgl64.Vec3{}, fmt.Errorf("component %d of %q: %w", i, value, err)
		}
		v[i] = f
	}
	return v, nil
}
