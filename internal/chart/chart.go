// internal/chart/chart.go
// Package chart turns series and scales into scene groups. Every function is
// pure: it reads its inputs and returns a new group the caller positions.
package chart

import (
	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/scale"
	"github.com/mwiater/queueviz/internal/scene"
)

const (
	// PointRadius is the radius of scatter and outlier markers.
	PointRadius = 3
	// TimeLabel titles every axis that carries microsecond values.
	TimeLabel = "time (μs)"
	// BarStroke outlines histogram bars.
	BarStroke = "grey"
)

// colorAt returns the colour for series i, cycling through colors.
func colorAt(colors []string, i int) string {
	if len(colors) == 0 {
		return scene.Ink
	}
	return colors[i%len(colors)]
}

// ScatterOptions labels the axes of a scatterplot and colours its series.
type ScatterOptions struct {
	XLabel string
	YLabel string
	Colors []string
}

// Scatterplot draws one marker per point per series with a bottom x axis and
// a left y axis. Overlapping points are drawn as overlapping markers.
func Scatterplot(series []dataset.Series, x, y scale.Continuous, opts ScatterOptions) *scene.Group {
	g := &scene.Group{Class: "scatterplot"}
	xr0, _ := x.Range()
	yr0, _ := y.Range()
	g.Add(
		scale.NewAxis(x, scale.Bottom, opts.XLabel, 0, yr0).Scene(),
		scale.NewAxis(y, scale.Left, opts.YLabel, xr0, 0).Scene(),
	)
	for i, s := range series {
		fill := colorAt(opts.Colors, i)
		for _, p := range s {
			g.Add(&scene.Circle{CX: x.Map(p.X), CY: y.Map(p.Y), R: PointRadius, Fill: fill})
		}
	}
	return g
}

// MedianProfile draws per-size medians as a scatterplot and joins each
// point's first and third quartile with a vertical line.
func MedianProfile(profiles [][]dataset.ProfilePoint, x, y scale.Continuous, opts ScatterOptions) *scene.Group {
	series := make([]dataset.Series, len(profiles))
	for i, p := range profiles {
		series[i] = dataset.Medians(p)
	}
	g := Scatterplot(series, x, y, opts)
	g.Class = "profile"
	for i, profile := range profiles {
		stroke := colorAt(opts.Colors, i)
		for _, p := range profile {
			px := x.Map(p.X)
			g.Add(&scene.Line{X1: px, Y1: y.Map(p.Q1), X2: px, Y2: y.Map(p.Q3), Stroke: stroke})
		}
	}
	return g
}

const (
	legendSwatch  = 10
	legendRow     = 25
	legendTextGap = 20
)

// Legend stacks a colour swatch and label per entry, rows 25px apart.
func Legend(colors, labels []string) *scene.Group {
	g := &scene.Group{Class: "legend"}
	for i, label := range labels {
		row := float64(i * legendRow)
		g.Add(
			&scene.Rect{X: 0, Y: row, Width: legendSwatch, Height: legendSwatch, Fill: colorAt(colors, i)},
			&scene.Text{X: legendTextGap, Y: row + legendSwatch - 1, Body: label, Anchor: scene.AnchorStart, Size: scale.FontSize, Fill: scene.Ink},
		)
	}
	return g
}
