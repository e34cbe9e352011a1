// internal/view/view.go
// Package view holds the interactive view state and the pure reducer that
// moves it between states in response to user actions.
package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mwiater/queueviz/internal/dataset"
)

// Chart selects the plot drawn for the current selection.
type Chart string

const (
	Scatterplot Chart = "scatterplot"
	Histogram   Chart = "histogram"
	Boxplot     Chart = "boxplot"
	Profile     Chart = "profile"
)

// Charts lists every chart type in menu order.
var Charts = []Chart{Scatterplot, Histogram, Boxplot, Profile}

// Valid reports whether c is a known chart type.
func (c Chart) Valid() bool { return slices.Contains(Charts, c) }

// ParseChart resolves a chart name case-insensitively.
func ParseChart(s string) (Chart, error) {
	c := Chart(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown chart %q", s)
	}
	return c, nil
}

// DefaultSize is selected initially when the dataset has it.
const DefaultSize dataset.Size = 1000

// State is one immutable snapshot of the view. Obtain one from New and
// advance it with Reduce; the zero value is not usable.
type State struct {
	Metric dataset.Metric
	Size   dataset.Size
	Chart  Chart
	Filter bool

	visible [3]bool
	derived []dataset.Series
	data    *dataset.Structured
}

// New returns the initial state over data: dequeue times, size 1000 (or the
// first size present), scatterplot, outliers filtered, everything visible.
// data must not be nil and is shared, never copied.
func New(data *dataset.Structured) State {
	s := State{
		Metric:  dataset.Dequeue,
		Chart:   Scatterplot,
		Filter:  true,
		visible: [3]bool{true, true, true},
		data:    data,
	}
	if data.Has(DefaultSize) {
		s.Size = DefaultSize
	} else if sizes := data.Sizes(); len(sizes) > 0 {
		s.Size = sizes[0]
	}
	s.derived = s.derive()
	return s
}

// Data returns the structured dataset the state selects from.
func (s State) Data() *dataset.Structured { return s.data }

// Visible reports whether impl is currently shown.
func (s State) Visible(impl dataset.Implementation) bool {
	i := impl.Index()
	return i >= 0 && s.visible[i]
}

// VisibleImplementations returns the shown implementations in canonical order.
func (s State) VisibleImplementations() []dataset.Implementation {
	var out []dataset.Implementation
	for _, impl := range dataset.Implementations {
		if s.Visible(impl) {
			out = append(out, impl)
		}
	}
	return out
}

// Derived returns the selected series, one per visible implementation in
// canonical order. The series are shared with the dataset and must not be
// modified.
func (s State) Derived() []dataset.Series { return slices.Clone(s.derived) }

func (s State) derive() []dataset.Series {
	out := make([]dataset.Series, 0, len(dataset.Implementations))
	for _, impl := range s.VisibleImplementations() {
		series, ok := s.data.Series(s.Size, impl, s.Metric, s.Filter)
		if !ok {
			series = dataset.Series{}
		}
		out = append(out, series)
	}
	return out
}

func (s State) visibleCount() int {
	n := 0
	for _, v := range s.visible {
		if v {
			n++
		}
	}
	return n
}
