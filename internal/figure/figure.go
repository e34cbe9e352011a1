// internal/figure/figure.go
// Package figure composes a complete chart for a view state: title, legend
// and the selected plot, laid out inside fixed margins.
package figure

import (
	"math"
	"strings"

	"github.com/mwiater/queueviz/internal/chart"
	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/scale"
	"github.com/mwiater/queueviz/internal/scene"
	"github.com/mwiater/queueviz/internal/view"
)

// Margins is the space kept free around the plot area.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Layout is the figure size and its margins, in pixels.
type Layout struct {
	Width, Height float64
	Margins       Margins
}

// DefaultLayout is 670x500 with room on the right for the legend.
func DefaultLayout() Layout {
	return Layout{
		Width:   670,
		Height:  500,
		Margins: Margins{Top: 40, Right: 140, Bottom: 40, Left: 65},
	}
}

func (l Layout) plotLeft() float64   { return l.Margins.Left }
func (l Layout) plotRight() float64  { return l.Width - l.Margins.Right }
func (l Layout) plotTop() float64    { return l.Margins.Top }
func (l Layout) plotBottom() float64 { return l.Height - l.Margins.Bottom }

// Title describes the selection, e.g. "Dequeue times with 1000 elements".
func Title(s view.State) string {
	verb := capitalize(s.Metric.Verb())
	if s.Chart == view.Profile {
		return verb + " median times across sizes"
	}
	return verb + " times with " + s.Size.String() + " elements"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Build lays out the figure for s. With no data to show only the title and
// legend are drawn.
func Build(s view.State, l Layout, p Palette) *scene.Group {
	visible := s.VisibleImplementations()
	colors := make([]string, len(visible))
	labels := make([]string, len(visible))
	for i, impl := range visible {
		colors[i] = p.For(impl)
		labels[i] = impl.Label()
	}

	root := &scene.Group{Class: "figure"}
	root.Add(&scene.Text{
		X:      (l.Width-l.Margins.Left-l.Margins.Right)/2 - 50,
		Y:      l.Margins.Top - 10,
		Body:   Title(s),
		Anchor: scene.AnchorStart,
		Size:   14,
		Fill:   scene.Ink,
	})
	legend := chart.Legend(colors, labels)
	legend.X, legend.Y = l.plotRight()+25, l.Height/2
	root.Add(legend)

	if plot := buildPlot(s, l, colors, labels); plot != nil {
		root.Add(plot)
	}
	return root
}

func buildPlot(s view.State, l Layout, colors, labels []string) *scene.Group {
	if s.Chart == view.Profile {
		return buildProfile(s, l, colors)
	}

	derived := s.Derived()
	minX, maxX, okX := extent(derived, func(p dataset.Point) float64 { return p.X })
	minY, maxY, okY := extent(derived, dataset.PointY)
	if !okX || !okY {
		return nil
	}
	y := scale.Linear(minY, maxY, l.plotBottom(), l.plotTop()).Nice(scale.DefaultTickCount)

	switch s.Chart {
	case view.Histogram:
		samples := make([][]float64, len(derived))
		for i, series := range derived {
			samples[i] = series.Ys()
		}
		x := scale.Linear(minY, maxY, l.plotLeft(), l.plotRight()).Nice(scale.DefaultTickCount)
		g := chart.Histogram(samples, x, l.plotBottom()-l.plotTop(), chart.HistogramOptions{
			Label:  chart.TimeLabel,
			Colors: colors,
		})
		g.Y = l.plotTop()
		return g
	case view.Boxplot:
		g := chart.Boxplot(derived, y, chart.BoxplotOptions{
			Labels: labels,
			Colors: colors,
			Width:  l.plotRight() - l.plotLeft(),
		})
		g.X = l.plotLeft()
		return g
	default:
		x := scale.Linear(minX, maxX, l.plotLeft(), l.plotRight())
		return chart.Scatterplot(derived, x, y, chart.ScatterOptions{
			XLabel: "iteration",
			YLabel: chart.TimeLabel,
			Colors: colors,
		})
	}
}

func buildProfile(s view.State, l Layout, colors []string) *scene.Group {
	var profiles [][]dataset.ProfilePoint
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, impl := range s.VisibleImplementations() {
		profile := dataset.Profile(s.Data(), impl, s.Metric, s.Filter)
		profiles = append(profiles, profile)
		for _, p := range profile {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Q1), max(maxY, p.Q3)
		}
	}
	if math.IsInf(minX, 1) {
		return nil
	}
	x := scale.Linear(minX, maxX, l.plotLeft(), l.plotRight()).Nice(scale.DefaultTickCount)
	y := scale.Linear(minY, maxY, l.plotBottom(), l.plotTop()).Nice(scale.DefaultTickCount)
	return chart.MedianProfile(profiles, x, y, chart.ScatterOptions{
		XLabel: "log n",
		YLabel: "log t",
		Colors: colors,
	})
}

// extent returns the smallest and largest value of acc over every point.
func extent(series []dataset.Series, acc func(dataset.Point) float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, p := range s {
			v := acc(p)
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	return lo, hi, !math.IsInf(lo, 1)
}
