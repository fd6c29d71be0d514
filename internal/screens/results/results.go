package results

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disha/internal/report"
	"github.com/abhisek/disha/internal/router"
	"github.com/abhisek/disha/internal/screen"
	"github.com/abhisek/disha/internal/store"
	"github.com/abhisek/disha/internal/ui/layout"
)

// view selects which rendering of the results is active.
type view int

const (
	viewSummary view = iota
	viewDashboard
)

type exportDoneMsg struct {
	Path string
	Err  error
}

// ResultsScreen renders a completed attempt: the summary card stack, and
// a career-path dashboard listing every track.
type ResultsScreen struct {
	attempt   *store.Attempt
	exportDir string

	view      view
	selected  int // dashboard cursor
	statusMsg string
	errMsg    string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a stored attempt. Exports land in
// exportDir (empty means the working directory).
func New(attempt *store.Attempt, exportDir string) *ResultsScreen {
	return &ResultsScreen{
		attempt:   attempt,
		exportDir: exportDir,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	if s.view == viewDashboard {
		return "Career Paths"
	}
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.view == viewDashboard {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Tab", Description: "Summary"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "All paths"},
		{Key: "E", Description: "Export JSON"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.statusMsg = "Saved to " + msg.Path
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if s.view == viewDashboard {
			s.view = viewSummary
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "tab", "d":
		if s.view == viewSummary {
			s.view = viewDashboard
		} else {
			s.view = viewSummary
		}
		return s, nil
	case "e", "E":
		if s.view == viewSummary {
			return s, s.export()
		}
	case "up", "k":
		if s.view == viewDashboard && s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.view == viewDashboard && s.selected < len(s.attempt.Results.CareerPaths)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *ResultsScreen) export() tea.Cmd {
	attempt := s.attempt
	dir := s.exportDir
	return func() tea.Msg {
		doc := report.Build(attempt.Results, attempt.Answers, time.Now())
		path, err := report.Write(doc, dir)
		return exportDoneMsg{Path: path, Err: err}
	}
}
