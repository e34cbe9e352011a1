// internal/dataset/datasettest/datasettest.go
// Package datasettest builds deterministic synthetic fixtures for tests.
package datasettest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"testing"
	"testing/fstest"

	json "github.com/goccy/go-json"

	"github.com/mwiater/queueviz/internal/dataset"
)

// Records returns n records whose timings grow with the implementation and
// size ordinal. Every tenth dequeue is a large spike so the outlier filter
// has something to drop.
func Records(impl dataset.Implementation, sizeIdx, n int) []dataset.Record {
	base := float64(1000 * (impl.Index() + 1) * (sizeIdx + 1))
	out := make([]dataset.Record, n)
	for j := range out {
		jitter := float64((j*7)%5) * 10
		deq := base + jitter
		if j%10 == 9 {
			deq = base * 50
		}
		out[j] = dataset.Record{Index: j, EnqueueTime: base/2 + jitter, DequeueTime: deq}
	}
	return out
}

// Tables returns the 18 canonical record tables with n records each.
func Tables(n int) [][]dataset.Record {
	out := make([][]dataset.Record, 0, len(dataset.Implementations)*len(dataset.Sizes))
	for _, impl := range dataset.Implementations {
		for i := range dataset.Sizes {
			out = append(out, Records(impl, i, n))
		}
	}
	return out
}

// Structured structures Tables(n), failing the test on error.
func Structured(t testing.TB, n int) *dataset.Structured {
	t.Helper()
	s, err := dataset.Structure(Tables(n))
	if err != nil {
		t.Fatalf("structure: %v", err)
	}
	return s
}

// MapFS encodes Tables(n) as fixture files in the given format.
func MapFS(t testing.TB, n int, f dataset.Format) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, impl := range dataset.Implementations {
		for i, size := range dataset.Sizes {
			data, err := Encode(Records(impl, i, n), f)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			fsys[dataset.FileName(impl, size, f)] = &fstest.MapFile{Data: data}
		}
	}
	return fsys
}

// Encode serialises records as a JSON array or a CSV table with header.
func Encode(records []dataset.Record, f dataset.Format) ([]byte, error) {
	if f != dataset.FormatCSV {
		return json.Marshal(records)
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"index", "enqueueTime", "dequeueTime"}); err != nil {
		return nil, err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.FormatFloat(r.EnqueueTime, 'f', -1, 64),
			strconv.FormatFloat(r.DequeueTime, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
