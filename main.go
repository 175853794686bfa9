package main

import (
	"os"

	"github.com/df07/go-whitted-raytracer/cmd"
	"github.com/df07/go-whitted-raytracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

func main() {
	os.Exit(run(os.Args))
}

// run executes the app and returns the process exit code
func run(args []string) int {
	if err := newApp().Run(args); err != nil {
		logger.Errorf("error: %s", err.Error())
		return 1
	}
	return 0
}

func newApp() *cli.App {
	// The default version flag claims -v, which is the verbosity switch here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render sphere scenes with recursive Whitted ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Load a scene from a text scene file (--scene) or pick a built-in one (--builtin),
trace one camera ray per pixel and write the frame as a PNG image.

Scene files contain one statement per line: NEAR, LEFT, RIGHT, BOTTOM, TOP, RES,
SPHERE, LIGHT, BACK and AMBIENT. Lines starting with # are ignored.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:  "list",
			Usage: "list built-in scenes and background functions",
			Subcommands: []cli.Command{
				{
					Name:   "scenes",
					Usage:  "list built-in scenes",
					Action: cmd.ListScenes,
				},
				{
					Name:   "backgrounds",
					Usage:  "list background functions",
					Action: cmd.ListBackgrounds,
				},
			},
		},
	}
	return app
}
