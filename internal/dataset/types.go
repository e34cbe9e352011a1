// internal/dataset/types.go
// Package dataset loads queue benchmark fixtures and reshapes them into
// per size, per implementation, per metric series.
package dataset

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrConfiguration reports a fixture set with the wrong shape.
	ErrConfiguration = errors.New("dataset configuration error")
	// ErrDataIntegrity reports a malformed or missing benchmark value.
	ErrDataIntegrity = errors.New("dataset integrity error")
)

// Implementation names one of the measured queue implementations.
type Implementation string

const (
	Array      Implementation = "array"
	LinkedList Implementation = "linkedList"
	Object     Implementation = "object"
)

// Implementations lists every implementation in canonical order.
var Implementations = []Implementation{Array, LinkedList, Object}

// Valid reports whether i is a known implementation.
func (i Implementation) Valid() bool {
	return i.ordinal() >= 0
}

func (i Implementation) ordinal() int {
	for n, impl := range Implementations {
		if impl == i {
			return n
		}
	}
	return -1
}

// Index returns the position of i in Implementations, or -1.
func (i Implementation) Index() int { return i.ordinal() }

// FileStem is the implementation segment used in fixture file names.
func (i Implementation) FileStem() string {
	if i == LinkedList {
		return "linked-list"
	}
	return string(i)
}

// Label is the human readable name used in legends.
func (i Implementation) Label() string {
	if i == LinkedList {
		return "linked list"
	}
	return string(i)
}

// ParseImplementation accepts the canonical name, the file stem or the label.
func ParseImplementation(s string) (Implementation, error) {
	for _, impl := range Implementations {
		if s == string(impl) || s == impl.FileStem() || s == impl.Label() {
			return impl, nil
		}
	}
	return "", fmt.Errorf("unknown implementation %q", s)
}

// Size is a benchmark input size bucket.
type Size int

// Sizes lists every size bucket in ascending order.
var Sizes = []Size{100, 1000, 10000, 100000, 1000000, 10000000}

// Valid reports whether s is one of Sizes.
func (s Size) Valid() bool {
	for _, known := range Sizes {
		if known == s {
			return true
		}
	}
	return false
}

func (s Size) String() string { return strconv.Itoa(int(s)) }

// ParseSize parses a size bucket label such as "10000".
func ParseSize(v string) (Size, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", v, err)
	}
	s := Size(n)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown size %d", n)
	}
	return s, nil
}

// Metric selects the enqueue or dequeue timings.
type Metric string

const (
	Enqueue Metric = "enqueueTimes"
	Dequeue Metric = "dequeueTimes"
)

// Metrics lists both metrics.
var Metrics = []Metric{Enqueue, Dequeue}

// Valid reports whether m is a known metric.
func (m Metric) Valid() bool { return m == Enqueue || m == Dequeue }

// Other returns the opposite metric.
func (m Metric) Other() Metric {
	if m == Enqueue {
		return Dequeue
	}
	return Enqueue
}

// Verb is "enqueue" or "dequeue".
func (m Metric) Verb() string {
	if m == Enqueue {
		return "enqueue"
	}
	return "dequeue"
}

// ParseMetric accepts "enqueue", "dequeue" or the full metric name.
func ParseMetric(s string) (Metric, error) {
	for _, m := range Metrics {
		if s == string(m) || s == m.Verb() {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// Record is one measured enqueue/dequeue pair, times in nanoseconds.
type Record struct {
	Index       int     `json:"index"`
	EnqueueTime float64 `json:"enqueueTime"`
	DequeueTime float64 `json:"dequeueTime"`
}

// Point is a plottable (x, y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointY is the accessor used for statistics over timing values.
func PointY(p Point) float64 { return p.Y }

// Series is an ordered sequence of points.
type Series []Point

// Ys returns the y values of the series.
func (s Series) Ys() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Y
	}
	return out
}

// Datasets holds both metric series for one implementation and size.
type Datasets struct {
	EnqueueTimes Series `json:"enqueueTimes"`
	DequeueTimes Series `json:"dequeueTimes"`
}

// Get returns the series for m.
func (d Datasets) Get(m Metric) Series {
	if m == Enqueue {
		return d.EnqueueTimes
	}
	return d.DequeueTimes
}

// ImplementationDataset pairs the raw series with their outlier-filtered variants.
type ImplementationDataset struct {
	Raw      Datasets `json:"raw"`
	Filtered Datasets `json:"filtered"`
}

// Pick returns the filtered or raw series for m.
func (d ImplementationDataset) Pick(m Metric, filtered bool) Series {
	if filtered {
		return d.Filtered.Get(m)
	}
	return d.Raw.Get(m)
}

// Bucket holds one ImplementationDataset per implementation for one size.
type Bucket map[Implementation]ImplementationDataset
