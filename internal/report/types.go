// internal/report/types.go
// Package report summarises the structured dataset per size, implementation
// and metric, for the stats command, the TUI and the HTTP API.
package report

import (
	"time"

	"github.com/mwiater/queueviz/internal/dataset"
)

// Summary aggregates one (size, implementation, metric) series. Times are in µs.
type Summary struct {
	Size           dataset.Size           `json:"size"`
	Implementation dataset.Implementation `json:"implementation"`
	Metric         dataset.Metric         `json:"metric"`

	// Sample counts before and after the outlier filter.
	Raw      int `json:"n_raw"`
	Filtered int `json:"n_filtered"`

	// Quantiles of the raw series.
	Median float64 `json:"median_us"`
	Q1     float64 `json:"q1_us"`
	Q3     float64 `json:"q3_us"`
	P95    float64 `json:"p95_us"`

	// Mean +/- std of the filtered series.
	Mean float64 `json:"mean_us"`
	Std  float64 `json:"std_us"`
}

// Report is the top-level artifact written by the stats command.
type Report struct {
	Source      string    `json:"source,omitempty"`
	Summaries   []Summary `json:"summaries"`
	GeneratedAt time.Time `json:"generated_at"`
}
