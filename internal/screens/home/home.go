package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/router"
	"github.com/abhisek/disha/internal/screen"
	"github.com/abhisek/disha/internal/screens/history"
	"github.com/abhisek/disha/internal/screens/profile"
	"github.com/abhisek/disha/internal/screens/results"
	"github.com/abhisek/disha/internal/screens/wizard"
	"github.com/abhisek/disha/internal/store"
	"github.com/abhisek/disha/internal/ui/components"
	"github.com/abhisek/disha/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu components.Menu

	studentName  string
	attemptCount int
	lastTaken    string
	hasProgress  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. The menu adapts to what the store holds: a
// paused quiz enables Resume, a completed attempt enables View Results.
func New(deps wizard.Deps, exportDir string) *HomeScreen {
	ctx := context.Background()

	var progress *store.Progress
	if deps.Progress != nil {
		progress, _ = deps.Progress.Load(ctx)
	}

	var latest *store.Attempt
	var attempts []store.Attempt
	if deps.Attempts != nil {
		latest, _ = deps.Attempts.Latest(ctx)
		attempts, _ = deps.Attempts.List(ctx, 0)
	}

	var storedProfile *quiz.UserProfile
	if deps.Profiles != nil {
		storedProfile, _ = deps.Profiles.Load(ctx)
	}

	h := &HomeScreen{
		hasProgress:  progress != nil,
		attemptCount: len(attempts),
	}
	if storedProfile != nil {
		h.studentName = storedProfile.Name
	} else if progress != nil {
		h.studentName = progress.Profile.Name
	}
	if latest != nil {
		h.lastTaken = latest.TakenAt.Format("Jan 02, 2006")
	}

	resultsFor := func(a *store.Attempt) screen.Screen {
		return results.New(a, exportDir)
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(func(p quiz.UserProfile) screen.Screen {
					return wizard.New(p, deps)
				})}
			}
		}},
		{Label: "RESUME QUIZ", Disabled: progress == nil, Action: func() tea.Cmd {
			if progress == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: wizard.Resume(*progress, deps)}
			}
		}},
		{Label: "VIEW RESULTS", Disabled: latest == nil, Action: func() tea.Cmd {
			if latest == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: resultsFor(latest)}
			}
		}},
		{Label: "HISTORY", Disabled: deps.Attempts == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Attempts, resultsFor)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("🧭  D I S H A")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Career direction for Indian students")
	sections = append(sections, title, subtitle, "")

	// Greeting / stats line.
	if h.studentName != "" {
		stats := fmt.Sprintf("Welcome back, %s", h.studentName)
		if h.attemptCount > 0 {
			stats += fmt.Sprintf("  ·  %d attempt", h.attemptCount)
			if h.attemptCount > 1 {
				stats += "s"
			}
		}
		if h.lastTaken != "" {
			stats += "  ·  last on " + h.lastTaken
		}
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Text).Render(stats), "")
	}

	if h.hasProgress {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).
				Render("You have a paused quiz waiting."), "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
