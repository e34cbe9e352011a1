// internal/dataset/structure.go
package dataset

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/mwiater/queueviz/internal/stats"
)

// Structured is the immutable, loaded benchmark dataset keyed by size.
// It is built once by Structure and shared read-only afterwards.
type Structured struct {
	buckets map[Size]Bucket
}

// Sizes returns the size buckets present, in ascending order.
func (s *Structured) Sizes() []Size {
	out := make([]Size, 0, len(s.buckets))
	for _, size := range Sizes {
		if _, ok := s.buckets[size]; ok {
			out = append(out, size)
		}
	}
	return out
}

// Has reports whether size is present.
func (s *Structured) Has(size Size) bool {
	_, ok := s.buckets[size]
	return ok
}

// Bucket returns the implementations measured at size.
func (s *Structured) Bucket(size Size) (Bucket, bool) {
	b, ok := s.buckets[size]
	return b, ok
}

// Series returns the raw or filtered series for one (size, implementation, metric).
// The returned slice is shared with the dataset and must not be modified.
func (s *Structured) Series(size Size, impl Implementation, m Metric, filtered bool) (Series, bool) {
	b, ok := s.buckets[size]
	if !ok || !m.Valid() {
		return nil, false
	}
	d, ok := b[impl]
	if !ok {
		return nil, false
	}
	return d.Pick(m, filtered), true
}

// Structure reshapes the canonical ordered list of record tables into the
// structured dataset. tables[i] is array at Sizes[i], tables[i+len(Sizes)]
// is linkedList and tables[i+2*len(Sizes)] is object.
func Structure(tables [][]Record) (*Structured, error) {
	want := len(Implementations) * len(Sizes)
	if len(tables) != want {
		return nil, fmt.Errorf("%w: expected %d record tables, got %d", ErrConfiguration, want, len(tables))
	}

	out := &Structured{buckets: make(map[Size]Bucket, len(Sizes))}
	for i, size := range Sizes {
		bucket := make(Bucket, len(Implementations))
		count := -1
		for n, impl := range Implementations {
			records := tables[i+n*len(Sizes)]
			if count >= 0 && len(records) != count {
				return nil, fmt.Errorf("%w: size %d: %s has %d records, %s has %d",
					ErrDataIntegrity, size, impl, len(records), Implementations[0], count)
			}
			count = len(records)

			raw, err := toDatasets(records)
			if err != nil {
				return nil, fmt.Errorf("%s@%d: %w", impl, size, err)
			}
			bucket[impl] = ImplementationDataset{Raw: raw, Filtered: filterDatasets(raw)}
		}
		out.buckets[size] = bucket
		slog.Debug("structured size bucket", "size", size, "records", count)
	}
	return out, nil
}

// toDatasets converts nanosecond records into microsecond series indexed by run order.
func toDatasets(records []Record) (Datasets, error) {
	d := Datasets{
		EnqueueTimes: make(Series, len(records)),
		DequeueTimes: make(Series, len(records)),
	}
	for j, r := range records {
		if err := r.validate(); err != nil {
			return Datasets{}, fmt.Errorf("record %d: %w", j, err)
		}
		d.EnqueueTimes[j] = Point{X: float64(j), Y: r.EnqueueTime / 1000}
		d.DequeueTimes[j] = Point{X: float64(j), Y: r.DequeueTime / 1000}
	}
	return d, nil
}

func (r Record) validate() error {
	if !finite(r.EnqueueTime) {
		return fmt.Errorf("%w: enqueueTime is %v", ErrDataIntegrity, r.EnqueueTime)
	}
	if !finite(r.DequeueTime) {
		return fmt.Errorf("%w: dequeueTime is %v", ErrDataIntegrity, r.DequeueTime)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func filterDatasets(raw Datasets) Datasets {
	return Datasets{
		EnqueueTimes: stats.Filter(raw.EnqueueTimes, stats.OutlierFence(raw.EnqueueTimes, PointY)),
		DequeueTimes: stats.Filter(raw.DequeueTimes, stats.OutlierFence(raw.DequeueTimes, PointY)),
	}
}
