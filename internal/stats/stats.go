// internal/stats/stats.go
// Package stats computes the descriptive statistics used by the charts:
// medians, interpolated quantiles, Tukey fences and box summaries.
package stats

import (
	"math"
	"slices"
)

// FenceMultiplier is the k in the Tukey fence Q1-k*IQR .. Q3+k*IQR.
const FenceMultiplier = 1.5

// Accessor extracts the numeric value a statistic is computed over.
type Accessor[T any] func(T) float64

// Identity is the accessor for plain float64 samples.
func Identity(v float64) float64 { return v }

// sortedValues projects samples through acc into a new sorted slice.
func sortedValues[T any](samples []T, acc Accessor[T]) []float64 {
	vals := make([]float64, len(samples))
	for i, s := range samples {
		vals[i] = acc(s)
	}
	slices.Sort(vals)
	return vals
}

// quantileSorted interpolates linearly between the order statistics
// around rank q*(n-1). vals must be sorted and non-empty.
func quantileSorted(vals []float64, q float64) float64 {
	if q <= 0 {
		return vals[0]
	}
	if q >= 1 {
		return vals[len(vals)-1]
	}
	pos := q * float64(len(vals)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return vals[l]
	}
	frac := pos - float64(l)
	return vals[l] + (vals[r]-vals[l])*frac
}

// Quantile returns the q-quantile (0..1) of the accessor values.
// It reports false when samples is empty or q is NaN. The input is not reordered.
func Quantile[T any](samples []T, q float64, acc Accessor[T]) (float64, bool) {
	if len(samples) == 0 || math.IsNaN(q) {
		return 0, false
	}
	return quantileSorted(sortedValues(samples, acc), q), true
}

// Median returns the middle order statistic, averaging the two middle
// values for even counts. It reports false for empty input.
func Median[T any](samples []T, acc Accessor[T]) (float64, bool) {
	return Quantile(samples, 0.5, acc)
}

// OutlierFence builds a keep predicate from the quartiles of samples:
// a point is kept when Q1-k*IQR < value < Q3+k*IQR with k = FenceMultiplier.
// Empty input yields a predicate that keeps everything.
func OutlierFence[T any](samples []T, acc Accessor[T]) func(T) bool {
	if len(samples) == 0 {
		return func(T) bool { return true }
	}
	vals := sortedValues(samples, acc)
	lower, upper := fences(quantileSorted(vals, 0.25), quantileSorted(vals, 0.75))
	return func(p T) bool {
		v := acc(p)
		return lower < v && v < upper
	}
}

func fences(q1, q3 float64) (lower, upper float64) {
	iqr := q3 - q1
	return q1 - FenceMultiplier*iqr, q3 + FenceMultiplier*iqr
}

// Filter returns the samples for which keep is true, in their original order.
// The result never aliases samples.
func Filter[T any](samples []T, keep func(T) bool) []T {
	out := make([]T, 0, len(samples))
	for _, s := range samples {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// MeanStd returns the population mean and standard deviation of values.
func MeanStd(values []float64) (mean, std float64) {
	n := float64(len(values))
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean = sum / n
	var varsum float64
	for _, v := range values {
		d := v - mean
		varsum += d * d
	}
	std = math.Sqrt(varsum / n)
	return
}
