package renderer

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width         int           // Frame width in pixels
	Height        int           // Frame height in pixels
	PrimaryRays   int           // Camera rays traced, one per pixel
	Workers       int           // Number of workers in the pool
	RowsPerWorker []int         // Scanlines rendered by each worker
	RenderTime    time.Duration // Wall time for the whole frame

	AverageLuminance float64 // Mean Rec. 709 luminance of the finished frame
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of img in [0,1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
		}
	}
	return total / float64(pixels)
}

// Table formats the per-worker statistics as a text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame"})
	for id, rows := range s.RowsPerWorker {
		percent := 0.0
		if s.Height > 0 {
			percent = 100 * float64(rows) / float64(s.Height)
		}
		table.Append([]string{
			fmt.Sprintf("%d", id),
			fmt.Sprintf("%d", rows),
			fmt.Sprintf("%02.1f %%", percent),
		})
	}
	table.SetFooter([]string{fmt.Sprintf("%dx%d", s.Width, s.Height), fmt.Sprintf("%d rays", s.PrimaryRays), s.RenderTime.String()})
	table.SetCaption(true, fmt.Sprintf("average luminance %.3f", s.AverageLuminance))
	table.Render()

	return buf.String()
}
