// internal/chart/boxplot.go
package chart

import (
	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/scale"
	"github.com/mwiater/queueviz/internal/scene"
	"github.com/mwiater/queueviz/internal/stats"
)

const (
	// BoxWidth is the width of every box.
	BoxWidth = 40
	capHalf  = 7
)

// BoxplotOptions names the boxes and sets the width of the band they share.
type BoxplotOptions struct {
	Labels []string
	Colors []string
	Width  float64
}

// Boxplot draws one box per series along a band scale: Q1..Q3 box, median
// line, whiskers capped at the last in-fence sample, and outlier markers.
// Empty series keep their band but draw nothing.
func Boxplot(series []dataset.Series, y scale.Continuous, opts BoxplotOptions) *scene.Group {
	band := scale.NewBand(opts.Labels, 0, opts.Width)
	yr0, _ := y.Range()

	g := &scene.Group{Class: "boxplot"}
	g.Add(
		scale.NewAxis(band, scale.Bottom, "", 0, yr0).Scene(),
		scale.NewAxis(y, scale.Left, TimeLabel, 0, 0).Scene(),
	)

	for i, s := range series {
		if i >= len(opts.Labels) {
			break
		}
		box, ok := stats.Box(s, dataset.PointY)
		if !ok {
			continue
		}
		cx, _ := band.Center(opts.Labels[i])
		fill := colorAt(opts.Colors, i)
		left, right := cx-BoxWidth/2, cx+BoxWidth/2

		g.Add(
			&scene.Rect{X: left, Y: y.Map(box.Q3), Width: BoxWidth, Height: y.Map(box.Q1) - y.Map(box.Q3), Fill: fill, Stroke: scene.Ink},
			&scene.Line{X1: left, Y1: y.Map(box.Median), X2: right, Y2: y.Map(box.Median), Stroke: "black"},
			&scene.Line{X1: cx, Y1: y.Map(box.Q3), X2: cx, Y2: y.Map(box.UpperWhisker), Stroke: scene.Ink},
			&scene.Line{X1: cx - capHalf, Y1: y.Map(box.UpperWhisker), X2: cx + capHalf, Y2: y.Map(box.UpperWhisker), Stroke: scene.Ink},
			&scene.Line{X1: cx, Y1: y.Map(box.Q1), X2: cx, Y2: y.Map(box.LowerWhisker), Stroke: scene.Ink},
			&scene.Line{X1: cx - capHalf, Y1: y.Map(box.LowerWhisker), X2: cx + capHalf, Y2: y.Map(box.LowerWhisker), Stroke: scene.Ink},
		)
		for _, p := range box.Outliers {
			g.Add(&scene.Circle{CX: cx, CY: y.Map(p.Y), R: PointRadius, Fill: fill})
		}
	}
	return g
}
