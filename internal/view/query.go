// internal/view/query.go
package view

import "github.com/mwiater/queueviz/internal/dataset"

// Query describes a target selection declaratively, the way the command
// line and HTTP hosts receive it. Zero fields keep the current value.
type Query struct {
	Size   dataset.Size
	Metric dataset.Metric
	Chart  Chart
	// Filter, when set, forces the outlier filter on or off.
	Filter *bool
	// Hide lists implementations to hide. Duplicates are ignored.
	Hide []dataset.Implementation
}

// Actions returns the actions that move s toward q.
func (q Query) Actions(s State) []Action {
	var actions []Action
	if q.Size != 0 {
		actions = append(actions, SelectSize{Size: q.Size})
	}
	if q.Metric != "" {
		actions = append(actions, ToggleMetric{Metric: q.Metric})
	}
	if q.Chart != "" {
		actions = append(actions, ChangeChart{Chart: q.Chart})
	}
	if q.Filter != nil && *q.Filter != s.Filter {
		actions = append(actions, ToggleOutlierFilter{})
	}
	seen := map[dataset.Implementation]bool{}
	for _, impl := range q.Hide {
		if seen[impl] || !s.Visible(impl) {
			continue
		}
		seen[impl] = true
		actions = append(actions, ToggleImplementation{Implementation: impl})
	}
	return actions
}

// Select applies q to s.
func Select(s State, q Query) State {
	return Apply(s, q.Actions(s)...)
}
