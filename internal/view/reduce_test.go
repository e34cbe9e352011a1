package view_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/dataset/datasettest"
	"github.com/mwiater/queueviz/internal/view"
)

func TestNew_InitialState(t *testing.T) {
	data := datasettest.Structured(t, 20)
	s := view.New(data)

	assert.Equal(t, dataset.Dequeue, s.Metric)
	assert.Equal(t, dataset.Size(1000), s.Size)
	assert.Equal(t, view.Scatterplot, s.Chart)
	assert.True(t, s.Filter)
	assert.Equal(t, dataset.Implementations, s.VisibleImplementations())

	derived := s.Derived()
	require.Len(t, derived, 3)
	want, _ := data.Series(1000, dataset.Object, dataset.Dequeue, true)
	assert.Equal(t, want, derived[2])
}

func TestReduce_KeepsOneImplementationVisible(t *testing.T) {
	s := view.New(datasettest.Structured(t, 10))
	rng := rand.New(rand.NewPCG(7, 11))
	for range 500 {
		impl := dataset.Implementations[rng.IntN(len(dataset.Implementations))]
		s = view.Reduce(s, view.ToggleImplementation{Implementation: impl})
		require.NotEmpty(t, s.VisibleImplementations())
		require.Len(t, s.Derived(), len(s.VisibleImplementations()))
	}
}

func TestReduce_RefusesToHideLast(t *testing.T) {
	s := view.Apply(view.New(datasettest.Structured(t, 10)),
		view.ToggleImplementation{Implementation: dataset.Array},
		view.ToggleImplementation{Implementation: dataset.Object},
	)
	require.Equal(t, []dataset.Implementation{dataset.LinkedList}, s.VisibleImplementations())

	next := view.Reduce(s, view.ToggleImplementation{Implementation: dataset.LinkedList})
	assert.Equal(t, s, next)
}

func TestReduce_DerivedFollowsVisibleOrder(t *testing.T) {
	data := datasettest.Structured(t, 20)
	s := view.Apply(view.New(data),
		view.ToggleImplementation{Implementation: dataset.LinkedList},
		view.ToggleOutlierFilter{},
		view.SelectSize{Size: 100000},
		view.ToggleMetric{},
	)

	assert.Equal(t, dataset.Enqueue, s.Metric)
	assert.False(t, s.Filter)
	wantArray, _ := data.Series(100000, dataset.Array, dataset.Enqueue, false)
	wantObject, _ := data.Series(100000, dataset.Object, dataset.Enqueue, false)
	assert.Equal(t, []dataset.Series{wantArray, wantObject}, s.Derived())

	s = view.Reduce(s, view.ToggleImplementation{Implementation: dataset.LinkedList})
	assert.Equal(t, dataset.Implementations, s.VisibleImplementations())
}

func TestReduce_FilterSwitchesRawAndFiltered(t *testing.T) {
	data := datasettest.Structured(t, 20)
	s := view.New(data)
	filtered := s.Derived()[0]
	raw := view.Reduce(s, view.ToggleOutlierFilter{}).Derived()[0]
	assert.Len(t, filtered, 18)
	assert.Len(t, raw, 20)
}

func TestReduce_ToggleMetric(t *testing.T) {
	s := view.New(datasettest.Structured(t, 5))
	s = view.Reduce(s, view.ToggleMetric{})
	assert.Equal(t, dataset.Enqueue, s.Metric)
	s = view.Reduce(s, view.ToggleMetric{Metric: dataset.Enqueue})
	assert.Equal(t, dataset.Enqueue, s.Metric)
	s = view.Reduce(s, view.ToggleMetric{Metric: dataset.Dequeue})
	assert.Equal(t, dataset.Dequeue, s.Metric)
}

func TestReduce_UnknownReferencesAreNoOps(t *testing.T) {
	s := view.New(datasettest.Structured(t, 5))
	actions := []view.Action{
		view.SelectSize{Size: 42},
		view.ToggleMetric{Metric: "peekTimes"},
		view.ToggleImplementation{Implementation: "ringBuffer"},
		view.ChangeChart{Chart: "pie"},
	}
	for _, a := range actions {
		assert.Equal(t, s, view.Reduce(s, a), a.String())
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	s := view.New(datasettest.Structured(t, 5))
	before := s.Derived()
	_ = view.Apply(s,
		view.ToggleImplementation{Implementation: dataset.Array},
		view.ChangeChart{Chart: view.Boxplot},
	)
	assert.Equal(t, view.Scatterplot, s.Chart)
	assert.True(t, s.Visible(dataset.Array))
	assert.Equal(t, before, s.Derived())
}

func TestParseChart(t *testing.T) {
	c, err := view.ParseChart(" Histogram ")
	require.NoError(t, err)
	assert.Equal(t, view.Histogram, c)

	_, err = view.ParseChart("pie")
	assert.Error(t, err)
}
