// internal/stats/box.go
package stats

// BoxStats summarises one sample for a box-and-whisker plot.
type BoxStats[T any] struct {
	Median float64
	Q1     float64
	Q3     float64

	// LowerFence and UpperFence are the Tukey fences; points strictly
	// outside them are outliers. A value exactly on a fence is drawn as a
	// whisker here, while OutlierFence drops it.
	LowerFence float64
	UpperFence float64

	// LowerWhisker and UpperWhisker are the most extreme data values that
	// still lie inside the fences. When no value lies between a quartile and
	// its fence the whisker collapses onto the quartile.
	LowerWhisker float64
	UpperWhisker float64

	// Outliers keeps the samples beyond the fences in input order.
	Outliers []T
}

// Box computes box plot statistics for samples. It reports false for empty input.
func Box[T any](samples []T, acc Accessor[T]) (BoxStats[T], bool) {
	if len(samples) == 0 {
		return BoxStats[T]{}, false
	}
	vals := sortedValues(samples, acc)
	b := BoxStats[T]{
		Median: quantileSorted(vals, 0.5),
		Q1:     quantileSorted(vals, 0.25),
		Q3:     quantileSorted(vals, 0.75),
	}
	b.LowerFence, b.UpperFence = fences(b.Q1, b.Q3)
	b.LowerWhisker, b.UpperWhisker = b.Q1, b.Q3

	for _, s := range samples {
		v := acc(s)
		switch {
		case v > b.UpperFence || v < b.LowerFence:
			b.Outliers = append(b.Outliers, s)
		case v > b.UpperWhisker:
			b.UpperWhisker = v
		case v < b.LowerWhisker:
			b.LowerWhisker = v
		}
	}
	return b, true
}
