package cmd

import (
	"bytes"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/background"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := newListTable(&buf, "Scene", "Spheres", "Lights", "Background", "Description")
	for _, info := range scene.Builtins() {
		sc, err := scene.Builtin(info.Name)
		if err != nil {
			return err
		}
		table.Append([]string{
			info.Name,
			strconv.Itoa(len(sc.Spheres)),
			strconv.Itoa(len(sc.Lights)),
			sc.Background.String(),
			info.Description,
		})
	}
	table.Render()

	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}

// List the background functions accepted by --background and the BACK statement.
func ListBackgrounds(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := newListTable(&buf, "Index", "Background")
	for _, mode := range background.Modes() {
		table.Append([]string{strconv.Itoa(int(mode)), mode.String()})
	}
	table.Render()

	logger.Noticef("background functions\n%s", buf.String())
	return nil
}

func newListTable(buf *bytes.Buffer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}
