package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/dataset/datasettest"
	"github.com/mwiater/queueviz/internal/figure"
	"github.com/mwiater/queueviz/internal/render"
	"github.com/mwiater/queueviz/internal/view"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T) *model {
	t.Helper()
	m := initialModel(Options{Layout: figure.DefaultLayout(), Palette: figure.DefaultPalette(), OutDir: t.TempDir()})
	_, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m2, _ := m.Update(datasetLoadedMsg{data: datasettest.Structured(t, 20)})
	return m2.(*model)
}

func TestViewer_LoadingPlaceholder(t *testing.T) {
	m := initialModel(Options{})
	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if !strings.Contains(m.View(), "Loading benchmark fixtures") {
		t.Fatalf("expected loading placeholder; got %q", m.View())
	}

	// keys other than quit are ignored until the dataset arrives
	m2, _ := m.Update(key("h"))
	if m2.(*model).loaded {
		t.Fatalf("model should not be loaded yet")
	}
}

func TestViewer_LoadCmdDeliversDataset(t *testing.T) {
	msg := loadDatasetCmd(datasettest.MapFS(t, 5, dataset.FormatJSON), dataset.FormatJSON)()
	loaded, ok := msg.(datasetLoadedMsg)
	if !ok {
		t.Fatalf("expected datasetLoadedMsg, got %T: %v", msg, msg)
	}
	if len(loaded.data.Sizes()) != len(dataset.Sizes) {
		t.Fatalf("expected all sizes, got %v", loaded.data.Sizes())
	}

	msg = loadDatasetCmd(os.DirFS(t.TempDir()), dataset.FormatJSON)()
	if _, ok := msg.(datasetLoadErr); !ok {
		t.Fatalf("expected datasetLoadErr for empty dir, got %T", msg)
	}
}

func TestViewer_KeysDriveReducer(t *testing.T) {
	m := loadedModel(t)
	if m.state.Size != 1000 || m.state.Metric != dataset.Dequeue {
		t.Fatalf("unexpected initial state %+v", m.state)
	}

	for _, k := range []string{"4", "e", "l", "h", "f"} {
		m2, _ := m.Update(key(k))
		m = m2.(*model)
	}
	if m.state.Size != 100000 {
		t.Fatalf("expected size 100000, got %d", m.state.Size)
	}
	if m.state.Metric != dataset.Enqueue {
		t.Fatalf("expected enqueue, got %s", m.state.Metric)
	}
	if m.state.Visible(dataset.LinkedList) {
		t.Fatalf("expected linked list hidden")
	}
	if m.state.Chart != view.Histogram || m.state.Filter {
		t.Fatalf("expected raw histogram, got %s filter=%v", m.state.Chart, m.state.Filter)
	}

	out := m.View()
	if !strings.Contains(out, "Enqueue times with 100000 elements") {
		t.Fatalf("expected title in view; got: %s", out)
	}
	if strings.Count(out, "enqueue") < 2 {
		t.Fatalf("expected one stats row per visible series; got: %s", out)
	}
}

func TestViewer_LastSeriesStaysVisible(t *testing.T) {
	m := loadedModel(t)
	for _, k := range []string{"a", "l", "o"} {
		m2, _ := m.Update(key(k))
		m = m2.(*model)
	}
	if !m.state.Visible(dataset.Object) {
		t.Fatalf("expected object to remain visible")
	}
}

func TestViewer_WriteFigure(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(key("w"))
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	msg := cmd()
	saved, ok := msg.(figureSavedMsg)
	if !ok {
		t.Fatalf("expected figureSavedMsg, got %T: %v", msg, msg)
	}
	if filepath.Base(string(saved)) != "scatterplot-dequeue-1000.svg" {
		t.Fatalf("unexpected file %s", saved)
	}
	b, err := os.ReadFile(string(saved))
	if err != nil || !strings.Contains(string(b), "<svg") {
		t.Fatalf("expected svg output, err=%v", err)
	}

	m2, _ := m.Update(msg)
	if !strings.Contains(m2.View(), "wrote") {
		t.Fatalf("expected status line after save")
	}
}

func TestViewer_WriteFailureKeepsViewer(t *testing.T) {
	m := loadedModel(t)
	m.opts.OutDir = filepath.Join(t.TempDir(), "missing")
	_, cmd := m.Update(key("w"))
	msg := cmd()
	if _, ok := msg.(figureSaveErr); !ok {
		t.Fatalf("expected figureSaveErr, got %T: %v", msg, msg)
	}

	m2, _ := m.Update(msg)
	m = m2.(*model)
	if m.err != nil {
		t.Fatalf("save failure must not become a load error: %v", m.err)
	}
	out := m.View()
	if !strings.Contains(out, "write failed") || strings.Contains(out, "Error:") {
		t.Fatalf("expected status line and normal view; got: %s", out)
	}

	m2, _ = m.Update(figureSaveErr{err: errors.New("disk full")})
	m = m2.(*model)
	if !strings.Contains(m.View(), "write failed: disk full") {
		t.Fatalf("expected disk full status; got: %s", m.View())
	}

	// keys still drive the reducer
	m2, _ = m.Update(key("b"))
	if m2.(*model).state.Chart != view.Boxplot {
		t.Fatalf("viewer stopped handling keys after a failed save")
	}
}

func TestViewer_FilterSwitchesTableQuantiles(t *testing.T) {
	m := loadedModel(t)
	filtered := m.summaries()
	m2, _ := m.Update(key("f"))
	raw := m2.(*model).summaries()
	if len(raw) != 3 || len(filtered) != 3 {
		t.Fatalf("expected one row per visible series")
	}
	// every tenth dequeue is a spike, so raw P95 lies above the filtered one
	if raw[0].P95 <= filtered[0].P95 {
		t.Fatalf("raw p95 %.3f should exceed filtered p95 %.3f", raw[0].P95, filtered[0].P95)
	}
}

func TestViewer_LoadError(t *testing.T) {
	m := initialModel(Options{})
	_, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m2, _ := m.Update(datasetLoadErr{err: errors.New("boom")})
	if !strings.Contains(m2.View(), "Error: boom") {
		t.Fatalf("expected error view; got %q", m2.View())
	}
}

func TestViewer_Quit(t *testing.T) {
	m := initialModel(Options{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestFigureFileName(t *testing.T) {
	s := view.New(datasettest.Structured(t, 2))
	if got := FigureFileName(s, render.PNG); got != "scatterplot-dequeue-1000.png" {
		t.Fatalf("got %s", got)
	}
	s = view.Reduce(s, view.ChangeChart{Chart: view.Profile})
	if got := FigureFileName(s, render.SVG); got != "profile-dequeue.svg" {
		t.Fatalf("got %s", got)
	}
}
