package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/dataset/datasettest"
)

func TestStructure_WrongTableCount(t *testing.T) {
	_, err := dataset.Structure(datasettest.Tables(5)[:17])
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrConfiguration)
}

func TestStructure_LengthMismatchWithinTriple(t *testing.T) {
	tables := datasettest.Tables(5)
	tables[len(dataset.Sizes)+2] = tables[len(dataset.Sizes)+2][:4] // linkedList @ 10000
	_, err := dataset.Structure(tables)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrDataIntegrity)
	assert.Contains(t, err.Error(), "10000")
}

func TestStructure_RejectsNaN(t *testing.T) {
	tables := datasettest.Tables(5)
	tables[0][3].DequeueTime = math.NaN()
	_, err := dataset.Structure(tables)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrDataIntegrity)
	assert.Contains(t, err.Error(), "record 3")
}

func TestStructure_ConvertsToMicroseconds(t *testing.T) {
	tables := datasettest.Tables(5)
	for i := range tables {
		if i == 1 { // array @ 1000
			tables[i] = []dataset.Record{
				{Index: 0, EnqueueTime: 10, DequeueTime: 100},
				{Index: 1, EnqueueTime: 10, DequeueTime: 102},
				{Index: 2, EnqueueTime: 10, DequeueTime: 98},
				{Index: 3, EnqueueTime: 10, DequeueTime: 101},
				{Index: 4, EnqueueTime: 10, DequeueTime: 5000},
			}
		}
	}
	s, err := dataset.Structure(tables)
	require.NoError(t, err)

	raw, ok := s.Series(1000, dataset.Array, dataset.Dequeue, false)
	require.True(t, ok)
	want := dataset.Series{{X: 0, Y: 0.1}, {X: 1, Y: 0.102}, {X: 2, Y: 0.098}, {X: 3, Y: 0.101}, {X: 4, Y: 5.0}}
	require.Len(t, raw, len(want))
	for i := range want {
		assert.Equal(t, want[i].X, raw[i].X)
		assert.InDelta(t, want[i].Y, raw[i].Y, 1e-12)
	}

	filtered, _ := s.Series(1000, dataset.Array, dataset.Dequeue, true)
	assert.Equal(t, raw[:4], filtered)
}

func TestStructure_FilteredIsOrderedSubsequence(t *testing.T) {
	s := datasettest.Structured(t, 40)
	for _, size := range s.Sizes() {
		for _, impl := range dataset.Implementations {
			for _, m := range dataset.Metrics {
				raw, _ := s.Series(size, impl, m, false)
				filtered, _ := s.Series(size, impl, m, true)
				assert.True(t, isSubsequence(filtered, raw), "%s@%d %s", impl, size, m)
			}
		}
	}
}

func TestStructure_SpikesFiltered(t *testing.T) {
	s := datasettest.Structured(t, 20)
	raw, _ := s.Series(100, dataset.Object, dataset.Dequeue, false)
	filtered, _ := s.Series(100, dataset.Object, dataset.Dequeue, true)
	assert.Len(t, raw, 20)
	assert.Len(t, filtered, 18)

	enq, _ := s.Series(100, dataset.Object, dataset.Enqueue, true)
	assert.Len(t, enq, 20)
}

func TestStructured_UnknownLookups(t *testing.T) {
	s := datasettest.Structured(t, 3)
	_, ok := s.Series(42, dataset.Array, dataset.Enqueue, false)
	assert.False(t, ok)
	_, ok = s.Series(100, "stack", dataset.Enqueue, false)
	assert.False(t, ok)
	_, ok = s.Series(100, dataset.Array, "pushTimes", false)
	assert.False(t, ok)
	assert.Equal(t, dataset.Sizes, s.Sizes())
}

func TestProfile_LogMedians(t *testing.T) {
	s := datasettest.Structured(t, 20)
	profile := dataset.Profile(s, dataset.Array, dataset.Enqueue, true)
	require.Len(t, profile, len(dataset.Sizes))
	assert.InDelta(t, 2.0, profile[0].X, 1e-12)
	assert.InDelta(t, 7.0, profile[len(profile)-1].X, 1e-12)
	for i, p := range profile {
		assert.LessOrEqual(t, p.Q1, p.Median)
		assert.LessOrEqual(t, p.Median, p.Q3)
		if i > 0 {
			assert.Greater(t, p.Median, profile[i-1].Median)
		}
	}
	assert.Len(t, dataset.Medians(profile), len(profile))
}

func TestParsers(t *testing.T) {
	impl, err := dataset.ParseImplementation("linked-list")
	require.NoError(t, err)
	assert.Equal(t, dataset.LinkedList, impl)
	assert.Equal(t, "linked list", impl.Label())

	_, err = dataset.ParseImplementation("deque")
	assert.Error(t, err)

	m, err := dataset.ParseMetric("enqueue")
	require.NoError(t, err)
	assert.Equal(t, dataset.Enqueue, m)
	assert.Equal(t, dataset.Dequeue, m.Other())

	size, err := dataset.ParseSize("100000")
	require.NoError(t, err)
	assert.Equal(t, dataset.Size(100000), size)
	_, err = dataset.ParseSize("12")
	assert.Error(t, err)
}

func isSubsequence(sub, full dataset.Series) bool {
	j := 0
	for _, p := range full {
		if j < len(sub) && sub[j] == p {
			j++
		}
	}
	return j == len(sub)
}
