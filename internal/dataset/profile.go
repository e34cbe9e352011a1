// internal/dataset/profile.go
package dataset

import (
	"math"

	"github.com/mwiater/queueviz/internal/stats"
)

// ProfilePoint is the log-scaled median timing of one size bucket.
type ProfilePoint struct {
	// X is log10 of the bucket size.
	X float64 `json:"x"`
	// Median, Q1 and Q3 are quantiles of log10(time in µs).
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// Profile returns, for every size present, the median and quartiles of the
// log10 timings of one implementation and metric. Buckets whose series is
// empty or contains non-positive timings are skipped.
func Profile(s *Structured, impl Implementation, m Metric, filtered bool) []ProfilePoint {
	var out []ProfilePoint
	for _, size := range s.Sizes() {
		series, ok := s.Series(size, impl, m, filtered)
		if !ok || len(series) == 0 {
			continue
		}
		logs := make([]float64, 0, len(series))
		for _, p := range series {
			if p.Y <= 0 {
				logs = nil
				break
			}
			logs = append(logs, math.Log10(p.Y))
		}
		if len(logs) == 0 {
			continue
		}
		med, _ := stats.Median(logs, stats.Identity)
		q1, _ := stats.Quantile(logs, 0.25, stats.Identity)
		q3, _ := stats.Quantile(logs, 0.75, stats.Identity)
		out = append(out, ProfilePoint{X: math.Log10(float64(size)), Median: med, Q1: q1, Q3: q3})
	}
	return out
}

// Medians returns the profile as a plottable (log size, log median) series.
func Medians(profile []ProfilePoint) Series {
	out := make(Series, len(profile))
	for i, p := range profile {
		out[i] = Point{X: p.X, Y: p.Median}
	}
	return out
}
