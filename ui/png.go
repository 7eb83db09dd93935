package ui

import (
	"bytes"
	"strings"

	"cancerdash/domain/chart"
	"cancerdash/internal/errors"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ImageSize is the minimum canvas of a rendered chart; wide charts grow to
// fit their bars.
type ImageSize struct {
	Width  int
	Height int
}

// DefaultImageSize fits a dozen bars without growing.
var DefaultImageSize = ImageSize{Width: 1024, Height: 560}

const (
	pngBarWidth   = 36
	pngBarSpacing = 18
)

// RenderPNG draws the valued bars of spec as a PNG bar chart in the order
// they are listed in. Missing bars are left out.
func RenderPNG(spec *chart.Spec, size ImageSize) ([]byte, error) {
	valued := spec.Valued()
	if len(valued) == 0 {
		return nil, errors.InvalidInput("chart has no bars with values")
	}

	bars := make([]gochart.Value, len(valued))
	maxValue, minValue := 0.0, 0.0
	for i, b := range valued {
		color := colorFromHex(b.Color)
		bars[i] = gochart.Value{
			Label: b.Country,
			Value: b.Value,
			Style: gochart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
		if b.Value > maxValue {
			maxValue = b.Value
		}
		if b.Value < minValue {
			minValue = b.Value
		}
	}
	if maxValue == 0 && minValue == 0 {
		maxValue = 1
	}

	width := size.Width
	if need := len(bars)*(pngBarWidth+pngBarSpacing) + 160; need > width {
		width = need
	}

	bc := gochart.BarChart{
		Title:      spec.Title,
		TitleStyle: gochart.Style{FontSize: 12},
		Width:      width,
		Height:     size.Height,
		BarWidth:   pngBarWidth,
		BarSpacing: pngBarSpacing,
		Background: gochart.Style{Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      gochart.Style{FontSize: 8},
		YAxis: gochart.YAxis{
			Name:  spec.YAxis.Title,
			Range: &gochart.ContinuousRange{Min: minValue * 1.1, Max: maxValue * 1.1},
		},
		// Bars start at zero so negative values hang below the axis.
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to render bar chart")
	}
	return buf.Bytes(), nil
}

func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
