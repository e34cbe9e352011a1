// internal/cli/tui.go
// Package cli hosts the interactive terminal viewer.
package cli

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/queueviz/internal/dataset"
	"github.com/mwiater/queueviz/internal/figure"
	"github.com/mwiater/queueviz/internal/logging"
	"github.com/mwiater/queueviz/internal/render"
	"github.com/mwiater/queueviz/internal/report"
	"github.com/mwiater/queueviz/internal/view"
)

// Options configures the viewer.
type Options struct {
	// FS holds the 18 benchmark fixture files.
	FS fs.FS
	// Format selects json, csv or auto detection.
	Format dataset.Format
	// Layout and Palette are used when the current figure is written out.
	Layout  figure.Layout
	Palette figure.Palette
	// OutDir receives figures written with the w key.
	OutDir string
	// LogFile receives log output while the viewer owns the terminal.
	LogFile  string
	LogLevel slog.Level
}

// model is the Bubble Tea model of the viewer. Every key press that changes
// what is shown is translated into a view.Action and applied with
// view.Reduce; the model itself only tracks loading and terminal state.
type model struct {
	opts Options
	// state is valid once loaded is set.
	state  view.State
	loaded bool

	isLoading bool
	err       error
	status    string

	spinner          spinner.Model
	width, height    int
	requestStartTime time.Time
}

func initialModel(opts Options) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &model{
		opts:             opts,
		isLoading:        true,
		spinner:          s,
		requestStartTime: time.Now(),
	}
}

// datasetLoadedMsg carries the structured dataset once every fixture is read.
type datasetLoadedMsg struct{ data *dataset.Structured }

// datasetLoadErr is sent when loading or structuring fails.
type datasetLoadErr struct{ err error }

// figureSavedMsg reports the path of a written figure.
type figureSavedMsg string

// figureSaveErr is sent when a figure cannot be written.
type figureSaveErr struct{ err error }

func loadDatasetCmd(fsys fs.FS, f dataset.Format) tea.Cmd {
	return func() tea.Msg {
		data, err := dataset.LoadStructured(context.Background(), fsys, f)
		if err != nil {
			return datasetLoadErr{err: err}
		}
		return datasetLoadedMsg{data: data}
	}
}

// FigureFileName names the file a state is written to, e.g.
// "scatterplot-dequeue-1000.svg".
func FigureFileName(s view.State, f render.Format) string {
	if s.Chart == view.Profile {
		return fmt.Sprintf("%s-%s.%s", s.Chart, s.Metric.Verb(), f)
	}
	return fmt.Sprintf("%s-%s-%d.%s", s.Chart, s.Metric.Verb(), s.Size, f)
}

func saveFigureCmd(s view.State, opts Options) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(opts.OutDir, FigureFileName(s, render.SVG))
		g := figure.Build(s, opts.Layout, opts.Palette)
		if err := render.WriteFile(path, g, int(opts.Layout.Width), int(opts.Layout.Height), render.SVG); err != nil {
			return figureSaveErr{err: err}
		}
		return figureSavedMsg(path)
	}
}

// keyActions maps single keys to reducer actions.
var keyActions = map[string]view.Action{
	"e": view.ToggleMetric{Metric: dataset.Enqueue},
	"d": view.ToggleMetric{Metric: dataset.Dequeue},
	"t": view.ToggleMetric{},
	"a": view.ToggleImplementation{Implementation: dataset.Array},
	"l": view.ToggleImplementation{Implementation: dataset.LinkedList},
	"o": view.ToggleImplementation{Implementation: dataset.Object},
	"s": view.ChangeChart{Chart: view.Scatterplot},
	"h": view.ChangeChart{Chart: view.Histogram},
	"b": view.ChangeChart{Chart: view.Boxplot},
	"m": view.ChangeChart{Chart: view.Profile},
	"f": view.ToggleOutlierFilter{},
}

func keyAction(key string) (view.Action, bool) {
	if a, ok := keyActions[key]; ok {
		return a, true
	}
	if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(dataset.Sizes) {
		return view.SelectSize{Size: dataset.Sizes[key[0]-'1']}, true
	}
	return nil, false
}

// Init starts the spinner and the fixture load.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDatasetCmd(m.opts.FS, m.opts.Format))
}

// Update applies key presses to the view state and tracks async results.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "q" {
			return m, tea.Quit
		}
		if !m.loaded {
			return m, nil
		}
		if key == "w" {
			m.status = "writing figure..."
			return m, saveFigureCmd(m.state, m.opts)
		}
		if a, ok := keyAction(key); ok {
			m.state = view.Reduce(m.state, a)
			m.status = ""
			slog.Debug("view action", "action", a.String(), "chart", m.state.Chart, "size", m.state.Size)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case datasetLoadedMsg:
		m.isLoading = false
		m.loaded = true
		m.state = view.New(msg.data)
		slog.Info("dataset loaded", "sizes", len(msg.data.Sizes()), "took", time.Since(m.requestStartTime))
		return m, nil

	case datasetLoadErr:
		m.isLoading = false
		m.err = msg.err
		return m, nil

	case figureSavedMsg:
		m.status = "wrote " + string(msg)
		return m, nil

	case figureSaveErr:
		m.status = "write failed: " + msg.err.Error()
		return m, nil
	}

	if m.isLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
)

// View renders the loading placeholder or the current selection with its
// per-series statistics.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if !m.loaded {
		timer := fmt.Sprintf("%.1f", time.Since(m.requestStartTime).Seconds())
		return fmt.Sprintf("\n  %s Loading benchmark fixtures... %ss\n", m.spinner.View(), timer)
	}

	var b strings.Builder
	filter := "outliers filtered"
	if !m.state.Filter {
		filter = "raw"
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render(figure.Title(m.state)),
		headerStyle.MarginLeft(1).Render(string(m.state.Chart)),
		headerStyle.MarginLeft(1).Render(filter),
	))
	b.WriteString("\n\n")

	for _, impl := range dataset.Implementations {
		style := offStyle
		if m.state.Visible(impl) {
			style = onStyle
		}
		b.WriteString(style.Render("■ "+impl.Label()) + "  ")
	}
	b.WriteString("\n\n")

	b.WriteString(report.Table(m.summaries()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(" 1-6 size · e/d/t metric · a/l/o series · s/h/b/m chart · f filter · w write svg · q quit"))
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(" "+m.status))
	}
	return b.String()
}

// summaries describes the visible series of the current size and metric.
// Quantiles follow the outlier filter; mean and std are always filtered.
func (m *model) summaries() []report.Summary {
	data := m.state.Data()
	var out []report.Summary
	for _, impl := range m.state.VisibleImplementations() {
		raw, _ := data.Series(m.state.Size, impl, m.state.Metric, false)
		filtered, _ := data.Series(m.state.Size, impl, m.state.Metric, true)
		out = append(out, report.SummarizeSeries(m.state.Size, impl, m.state.Metric, raw, filtered, m.state.Filter))
	}
	return out
}

// StartTUI runs the viewer until the user quits. Logs go to opts.LogFile
// while the program owns the terminal.
func StartTUI(opts Options) error {
	if opts.LogFile == "" {
		opts.LogFile = "debug.log"
	}
	f, err := tea.LogToFile(opts.LogFile, "queueviz")
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer f.Close()

	prev := slog.Default()
	slog.SetDefault(logging.New(f, opts.LogLevel))
	defer slog.SetDefault(prev)

	p := tea.NewProgram(initialModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}
