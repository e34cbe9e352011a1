// internal/view/reduce.go
package view

import (
	"fmt"

	"github.com/mwiater/queueviz/internal/dataset"
)

// Action is a user intent understood by Reduce. The set is closed: the
// concrete types below are the only actions.
type Action interface {
	fmt.Stringer
	isAction()
}

// SelectSize shows the given size bucket.
type SelectSize struct{ Size dataset.Size }

// ToggleMetric selects Metric, or flips between enqueue and dequeue when
// Metric is empty.
type ToggleMetric struct{ Metric dataset.Metric }

// ToggleImplementation shows or hides one implementation.
type ToggleImplementation struct{ Implementation dataset.Implementation }

// ChangeChart switches the plot type.
type ChangeChart struct{ Chart Chart }

// ToggleOutlierFilter switches between raw and filtered series.
type ToggleOutlierFilter struct{}

func (SelectSize) isAction()           {}
func (ToggleMetric) isAction()         {}
func (ToggleImplementation) isAction() {}
func (ChangeChart) isAction()          {}
func (ToggleOutlierFilter) isAction()  {}

func (a SelectSize) String() string { return "select size " + a.Size.String() }
func (a ToggleMetric) String() string {
	if a.Metric == "" {
		return "toggle metric"
	}
	return "select metric " + string(a.Metric)
}
func (a ToggleImplementation) String() string {
	return "toggle " + string(a.Implementation)
}
func (a ChangeChart) String() string       { return "chart " + string(a.Chart) }
func (ToggleOutlierFilter) String() string { return "toggle outlier filter" }

// Reduce returns the state that follows s after a. It never mutates s.
// Actions naming an unknown size, metric, implementation or chart return s
// unchanged, as does hiding the last visible implementation.
func Reduce(s State, a Action) State {
	next := s
	switch a := a.(type) {
	case SelectSize:
		if s.data == nil || !s.data.Has(a.Size) {
			return s
		}
		next.Size = a.Size
	case ToggleMetric:
		switch {
		case a.Metric == "":
			next.Metric = s.Metric.Other()
		case a.Metric.Valid():
			next.Metric = a.Metric
		default:
			return s
		}
	case ToggleImplementation:
		i := a.Implementation.Index()
		if i < 0 {
			return s
		}
		if s.visible[i] && s.visibleCount() == 1 {
			return s
		}
		next.visible[i] = !s.visible[i]
	case ChangeChart:
		if !a.Chart.Valid() {
			return s
		}
		next.Chart = a.Chart
	case ToggleOutlierFilter:
		next.Filter = !s.Filter
	default:
		return s
	}
	if next.data != nil {
		next.derived = next.derive()
	}
	return next
}

// Apply folds actions over s in order.
func Apply(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
