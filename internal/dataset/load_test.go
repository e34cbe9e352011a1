package dataset_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/dataset/datasettest"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "linked-list-queue-1000.json", dataset.FileName(dataset.LinkedList, 1000, dataset.FormatJSON))
	assert.Equal(t, "object-queue-10000000.csv", dataset.FileName(dataset.Object, 10000000, dataset.FormatCSV))

	names := dataset.FileNames(dataset.FormatJSON)
	require.Len(t, names, 18)
	assert.Equal(t, "array-queue-100.json", names[0])
	assert.Equal(t, "linked-list-queue-100.json", names[6])
	assert.Equal(t, "object-queue-10000000.json", names[17])
}

func TestLoad_JSONAndCSVAgree(t *testing.T) {
	ctx := context.Background()
	fromJSON, err := dataset.Load(ctx, datasettest.MapFS(t, 12, dataset.FormatJSON), dataset.FormatJSON)
	require.NoError(t, err)
	fromCSV, err := dataset.Load(ctx, datasettest.MapFS(t, 12, dataset.FormatCSV), dataset.FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, datasettest.Tables(12), fromJSON)
	assert.Equal(t, fromJSON, fromCSV)
}

func TestLoad_AutoFallsBackToCSV(t *testing.T) {
	fsys := datasettest.MapFS(t, 4, dataset.FormatJSON)
	name := dataset.FileName(dataset.Object, 100, dataset.FormatJSON)
	delete(fsys, name)
	data, err := datasettest.Encode(datasettest.Records(dataset.Object, 0, 4), dataset.FormatCSV)
	require.NoError(t, err)
	fsys[dataset.FileName(dataset.Object, 100, dataset.FormatCSV)] = &fstest.MapFile{Data: data}

	s, err := dataset.LoadStructured(context.Background(), fsys, dataset.FormatAuto)
	require.NoError(t, err)
	series, ok := s.Series(100, dataset.Object, dataset.Enqueue, false)
	require.True(t, ok)
	assert.Len(t, series, 4)
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := datasettest.MapFS(t, 4, dataset.FormatJSON)
	delete(fsys, dataset.FileName(dataset.Array, 1000, dataset.FormatJSON))

	_, err := dataset.Load(context.Background(), fsys, dataset.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrConfiguration)
	assert.Contains(t, err.Error(), "array-queue-1000.json")
}

func TestLoad_MissingFieldNamesFileAndRecord(t *testing.T) {
	fsys := datasettest.MapFS(t, 4, dataset.FormatJSON)
	name := dataset.FileName(dataset.LinkedList, 100000, dataset.FormatJSON)
	fsys[name] = &fstest.MapFile{Data: []byte(`[
		{"index": 0, "enqueueTime": 1, "dequeueTime": 2},
		{"index": 1, "enqueueTime": 1}
	]`)}

	_, err := dataset.Load(context.Background(), fsys, dataset.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrDataIntegrity)
	assert.Contains(t, err.Error(), name)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "dequeueTime")
}

func TestLoad_MalformedCSVNumber(t *testing.T) {
	fsys := datasettest.MapFS(t, 4, dataset.FormatCSV)
	name := dataset.FileName(dataset.Array, 100, dataset.FormatCSV)
	fsys[name] = &fstest.MapFile{Data: []byte("index,enqueueTime,dequeueTime\n0,12,abc\n")}

	_, err := dataset.Load(context.Background(), fsys, dataset.FormatCSV)
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrDataIntegrity)
	assert.Contains(t, err.Error(), name)
}

func TestLoad_CSVHeaderRequired(t *testing.T) {
	fsys := datasettest.MapFS(t, 4, dataset.FormatCSV)
	name := dataset.FileName(dataset.Array, 100, dataset.FormatCSV)
	fsys[name] = &fstest.MapFile{Data: []byte("index,enqueueTime\n0,12\n")}

	_, err := dataset.Load(context.Background(), fsys, dataset.FormatCSV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dequeueTime")
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dataset.Load(ctx, datasettest.MapFS(t, 2, dataset.FormatJSON), dataset.FormatJSON)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseFormat(t *testing.T) {
	f, err := dataset.ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, dataset.FormatCSV, f)

	f, err = dataset.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, dataset.FormatAuto, f)

	_, err = dataset.ParseFormat("xml")
	assert.ErrorIs(t, err, dataset.ErrConfiguration)
}
