package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disha/internal/router"
	"github.com/abhisek/disha/internal/screen"
	"github.com/abhisek/disha/internal/screens/home"
	"github.com/abhisek/disha/internal/screens/results"
	"github.com/abhisek/disha/internal/screens/welcome"
	"github.com/abhisek/disha/internal/screens/wizard"
	"github.com/abhisek/disha/internal/store"
	"github.com/abhisek/disha/internal/ui/layout"
	"github.com/abhisek/disha/internal/webhook"
)

// Options carries the collaborators the TUI needs.
type Options struct {
	Store     *store.Store
	Hook      *webhook.Client
	ExportDir string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	student string
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(opts Options) AppModel {
	deps := wizard.Deps{
		Hook: opts.Hook,
	}
	if opts.Store != nil {
		deps.Profiles = opts.Store.ProfileRepo()
		deps.Progress = opts.Store.ProgressRepo()
		deps.Attempts = opts.Store.AttemptRepo()
	}
	deps.ResultsFactory = resultsFactory(opts.ExportDir)

	var student string
	if deps.Profiles != nil {
		if p, err := deps.Profiles.Load(context.Background()); err == nil && p != nil {
			student = p.Name
		}
	}

	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(deps, opts.ExportDir)
	})

	return AppModel{
		router:  router.New(welcomeScreen),
		student: student,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash owns the whole frame.
	if title == "" {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.student, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func resultsFactory(exportDir string) func(*store.Attempt) screen.Screen {
	return func(a *store.Attempt) screen.Screen {
		return results.New(a, exportDir)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
