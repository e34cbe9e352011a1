// internal/chart/histogram.go
package chart

import (
	"math"

	"github.com/mwiater/queueviz/internal/scale"
	"github.com/mwiater/queueviz/internal/scene"
)

// BinCount is one histogram bucket covering [X0, X1).
type BinCount struct {
	X0, X1 float64
	Count  int
}

// Bin buckets values into n uniform bins over [lo, hi]. Values outside the
// domain and NaNs are dropped; hi itself falls in the last bin.
func Bin(values []float64, lo, hi float64, n int) []BinCount {
	if n < 1 {
		return nil
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		b := BinCount{X0: lo, X1: hi}
		for _, v := range values {
			if v == lo {
				b.Count++
			}
		}
		return []BinCount{b}
	}

	width := (hi - lo) / float64(n)
	bins := make([]BinCount, n)
	for i := range bins {
		bins[i].X0 = lo + float64(i)*width
		bins[i].X1 = lo + float64(i+1)*width
	}
	bins[n-1].X1 = hi

	for _, v := range values {
		if math.IsNaN(v) || v < lo || v > hi {
			continue
		}
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}

// SturgesBins is Sturges' rule: ceil(log2 n) + 1, at least one bin.
func SturgesBins(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// HistogramOptions configures Histogram. Bins of zero applies Sturges' rule
// to the longest series.
type HistogramOptions struct {
	Label  string
	Colors []string
	Bins   int
}

// Histogram bins every series independently over the x domain and draws one
// bar per (series, bin) against a count scale shared by all series.
func Histogram(samples [][]float64, x scale.Continuous, height float64, opts HistogramOptions) *scene.Group {
	n := opts.Bins
	if n <= 0 {
		longest := 0
		for _, s := range samples {
			longest = max(longest, len(s))
		}
		n = SturgesBins(longest)
	}

	lo, hi := x.Domain()
	binsets := make([][]BinCount, len(samples))
	maxCount := 0
	for i, s := range samples {
		binsets[i] = Bin(s, lo, hi, n)
		for _, b := range binsets[i] {
			maxCount = max(maxCount, b.Count)
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	counts := scale.Linear(0, float64(maxCount), 0, height).Nice(scale.DefaultTickCount)
	_, top := counts.Domain()
	xr0, _ := x.Range()

	g := &scene.Group{Class: "histogram"}
	g.Add(
		scale.NewAxis(scale.Linear(0, top, height, 0), scale.Left, "counts", xr0, 0).Scene(),
		scale.NewAxis(x, scale.Bottom, opts.Label, 0, height).Scene(),
	)
	for i, bins := range binsets {
		fill := colorAt(opts.Colors, i)
		for _, b := range bins {
			h := counts.Map(float64(b.Count))
			g.Add(&scene.Rect{
				X:      x.Map(b.X0),
				Y:      height - h,
				Width:  x.Map(b.X1) - x.Map(b.X0),
				Height: h,
				Fill:   fill,
				Stroke: BarStroke,
			})
		}
	}
	return g
}
