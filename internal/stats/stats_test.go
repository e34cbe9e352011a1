package stats

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y float64 }

func yOf(p point) float64 { return p.y }

func TestMedian_EmptyAndOddEven(t *testing.T) {
	_, ok := Median([]float64{}, Identity)
	assert.False(t, ok)

	m, ok := Median([]float64{3, 1, 2}, Identity)
	require.True(t, ok)
	assert.Equal(t, 2.0, m)

	m, ok = Median([]float64{4, 1, 3, 2}, Identity)
	require.True(t, ok)
	assert.Equal(t, 2.5, m)
}

func TestQuantile_Interpolates(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

	q1, ok := Quantile(vals, 0.25, Identity)
	require.True(t, ok)
	assert.InDelta(t, 3.25, q1, 1e-12)

	q3, _ := Quantile(vals, 0.75, Identity)
	assert.InDelta(t, 7.75, q3, 1e-12)

	lo, _ := Quantile(vals, -1, Identity)
	hi, _ := Quantile(vals, 2, Identity)
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 100.0, hi)
}

func TestQuantile_DoesNotReorderInput(t *testing.T) {
	vals := []float64{5, 1, 4}
	_, _ = Quantile(vals, 0.5, Identity)
	assert.Equal(t, []float64{5, 1, 4}, vals)
}

func TestMedian_BetweenMinAndMax(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		n := 1 + r.IntN(50)
		vals := make([]float64, n)
		for j := range vals {
			vals[j] = r.NormFloat64() * 100
		}
		m, ok := Median(vals, Identity)
		require.True(t, ok)
		assert.GreaterOrEqual(t, m, slices.Min(vals))
		assert.LessOrEqual(t, m, slices.Max(vals))
	}
}

func TestQuartiles_AreOrdered(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 200; i++ {
		n := 1 + r.IntN(40)
		vals := make([]float64, n)
		for j := range vals {
			vals[j] = r.ExpFloat64()
		}
		q1, _ := Quantile(vals, 0.25, Identity)
		q2, _ := Quantile(vals, 0.5, Identity)
		q3, _ := Quantile(vals, 0.75, Identity)
		assert.LessOrEqual(t, q1, q2)
		assert.LessOrEqual(t, q2, q3)
	}
}

func TestOutlierFence_EmptyKeepsEverything(t *testing.T) {
	keep := OutlierFence([]point{}, yOf)
	assert.True(t, keep(point{0, 1e12}))
}

func TestOutlierFence_DropsFarPoint(t *testing.T) {
	raw := []point{{0, 0.1}, {1, 0.102}, {2, 0.098}, {3, 0.101}, {4, 5.0}}
	filtered := Filter(raw, OutlierFence(raw, yOf))
	assert.Equal(t, []point{{0, 0.1}, {1, 0.102}, {2, 0.098}, {3, 0.101}}, filtered)
}

func TestFilter_IsIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	raw := make([]point, 300)
	for i := range raw {
		raw[i] = point{float64(i), r.ExpFloat64() * 10}
	}
	keep := OutlierFence(raw, yOf)
	once := Filter(raw, keep)
	twice := Filter(once, keep)
	assert.Equal(t, once, twice)
}

func TestMeanStd(t *testing.T) {
	m, s := MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 5.0, m)
	assert.Equal(t, 2.0, s)

	m, s = MeanStd(nil)
	assert.Zero(t, m)
	assert.Zero(t, s)
}
