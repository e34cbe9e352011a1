// internal/dataset/load.go
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// Format selects the fixture encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	// FormatAuto prefers a .json file and falls back to .csv per fixture.
	FormatAuto Format = "auto"
)

// ParseFormat validates a fixture format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV, FormatAuto:
		return f, nil
	case "":
		return FormatAuto, nil
	}
	return "", fmt.Errorf("%w: unknown fixture format %q", ErrConfiguration, s)
}

// FileName returns the fixture name for one implementation and size,
// e.g. "linked-list-queue-1000.json".
func FileName(impl Implementation, size Size, f Format) string {
	return fmt.Sprintf("%s-queue-%d.%s", impl.FileStem(), size, f)
}

// FileNames lists every fixture in the canonical structuring order.
func FileNames(f Format) []string {
	out := make([]string, 0, len(Implementations)*len(Sizes))
	for _, impl := range Implementations {
		for _, size := range Sizes {
			out = append(out, FileName(impl, size, f))
		}
	}
	return out
}

// Load reads all fixtures from fsys concurrently and returns the record
// tables in canonical order (see Structure). The first failure cancels the
// remaining reads.
func Load(ctx context.Context, fsys fs.FS, f Format) ([][]Record, error) {
	defer timeTrack(time.Now(), "load fixtures")

	tables := make([][]Record, len(Implementations)*len(Sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(6)

	i := 0
	for _, impl := range Implementations {
		for _, size := range Sizes {
			idx, impl, size := i, impl, size
			i++
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				records, err := loadOne(fsys, impl, size, f)
				if err != nil {
					return err
				}
				tables[idx] = records
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// LoadStructured loads every fixture and structures the result.
func LoadStructured(ctx context.Context, fsys fs.FS, f Format) (*Structured, error) {
	tables, err := Load(ctx, fsys, f)
	if err != nil {
		return nil, err
	}
	return Structure(tables)
}

func loadOne(fsys fs.FS, impl Implementation, size Size, f Format) ([]Record, error) {
	format := f
	if f == FormatAuto {
		format = FormatJSON
		if _, err := fs.Stat(fsys, FileName(impl, size, FormatJSON)); errors.Is(err, fs.ErrNotExist) {
			format = FormatCSV
		}
	}
	name := FileName(impl, size, format)

	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrConfiguration, name, err)
	}
	defer file.Close()

	var records []Record
	switch format {
	case FormatCSV:
		records, err = decodeCSV(file)
	default:
		records, err = decodeJSON(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	slog.Debug("loaded fixture", "file", name, "records", len(records))
	return records, nil
}

// jsonRecord decodes through pointers so that a missing field is an error
// rather than a silent zero.
type jsonRecord struct {
	Index       *int     `json:"index"`
	EnqueueTime *float64 `json:"enqueueTime"`
	DequeueTime *float64 `json:"dequeueTime"`
}

func decodeJSON(r io.Reader) ([]Record, error) {
	var raw []jsonRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrDataIntegrity, err)
	}
	out := make([]Record, len(raw))
	for i, jr := range raw {
		switch {
		case jr.Index == nil:
			return nil, fmt.Errorf("%w: record %d: missing index", ErrDataIntegrity, i)
		case jr.EnqueueTime == nil:
			return nil, fmt.Errorf("%w: record %d: missing enqueueTime", ErrDataIntegrity, i)
		case jr.DequeueTime == nil:
			return nil, fmt.Errorf("%w: record %d: missing dequeueTime", ErrDataIntegrity, i)
		}
		out[i] = Record{Index: *jr.Index, EnqueueTime: *jr.EnqueueTime, DequeueTime: *jr.DequeueTime}
		if err := out[i].validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return out, nil
}

func decodeCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %v", ErrDataIntegrity, err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, want := range []string{"index", "enqueueTime", "dequeueTime"} {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("%w: csv header missing %q", ErrDataIntegrity, want)
		}
	}

	var out []Record
	for row := 0; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrDataIntegrity, row, err)
		}
		rec, err := parseCSVRecord(fields, cols)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", row, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseCSVRecord(fields []string, cols map[string]int) (Record, error) {
	num := func(name string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[cols[name]]), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrDataIntegrity, name, err)
		}
		return v, nil
	}
	idx, err := num("index")
	if err != nil {
		return Record{}, err
	}
	enq, err := num("enqueueTime")
	if err != nil {
		return Record{}, err
	}
	deq, err := num("dequeueTime")
	if err != nil {
		return Record{}, err
	}
	rec := Record{Index: int(idx), EnqueueTime: enq, DequeueTime: deq}
	return rec, rec.validate()
}

func timeTrack(start time.Time, label string) {
	slog.Debug(label+" done", "took", time.Since(start))
}
