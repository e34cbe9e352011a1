// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/stats"
)

// Summarize builds one Summary per size, implementation and metric, in
// canonical order.
func Summarize(s *dataset.Structured) []Summary {
	var out []Summary
	for _, size := range s.Sizes() {
		for _, impl := range dataset.Implementations {
			for _, m := range dataset.Metrics {
				raw, ok := s.Series(size, impl, m, false)
				if !ok {
					continue
				}
				filtered, _ := s.Series(size, impl, m, true)
				out = append(out, summarize(size, impl, m, raw, filtered))
			}
		}
	}
	return out
}

// SummarizeSeries summarises ad hoc series such as a view's derived
// selection. Quantiles come from the filtered series when useFiltered is set
// and from the raw series otherwise.
func SummarizeSeries(size dataset.Size, impl dataset.Implementation, m dataset.Metric, raw, filtered dataset.Series, useFiltered bool) Summary {
	sum := summarize(size, impl, m, raw, filtered)
	if useFiltered {
		setQuantiles(&sum, filtered)
	}
	return sum
}

func summarize(size dataset.Size, impl dataset.Implementation, m dataset.Metric, raw, filtered dataset.Series) Summary {
	sum := Summary{
		Size:           size,
		Implementation: impl,
		Metric:         m,
		Raw:            len(raw),
		Filtered:       len(filtered),
	}
	setQuantiles(&sum, raw)
	sum.Mean, sum.Std = stats.MeanStd(filtered.Ys())
	return sum
}

func setQuantiles(sum *Summary, s dataset.Series) {
	sum.Median, _ = stats.Median(s, dataset.PointY)
	sum.Q1, _ = stats.Quantile(s, 0.25, dataset.PointY)
	sum.Q3, _ = stats.Quantile(s, 0.75, dataset.PointY)
	sum.P95, _ = stats.Quantile(s, 0.95, dataset.PointY)
}

// Build packs the summaries of s with a timestamp.
func Build(s *dataset.Structured, source string) Report {
	return Report{
		Source:      source,
		Summaries:   Summarize(s),
		GeneratedAt: time.Now().UTC(),
	}
}

// Filter keeps the summaries matching size, implementation and metric. Zero
// values match everything.
func Filter(rows []Summary, size dataset.Size, impl dataset.Implementation, m dataset.Metric) []Summary {
	var out []Summary
	for _, r := range rows {
		if (size == 0 || r.Size == size) && (impl == "" || r.Implementation == impl) && (m == "" || r.Metric == m) {
			out = append(out, r)
		}
	}
	return out
}

// WriteJSON writes r as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
