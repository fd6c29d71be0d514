package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/router"
	"github.com/abhisek/disha/internal/screen"
	"github.com/abhisek/disha/internal/ui/components"
	"github.com/abhisek/disha/internal/ui/layout"
	"github.com/abhisek/disha/internal/ui/theme"
)

// step indexes the collector's wizard stages. Stream and degree stages
// are skipped when the chosen education level doesn't imply them.
type step int

const (
	stepName step = iota
	stepLevel
	stepStream
	stepDegree
)

// ProfileScreen collects the respondent profile one field at a time,
// then hands the validated profile to the next-screen factory.
type ProfileScreen struct {
	next func(quiz.UserProfile) screen.Screen

	step    step
	profile quiz.UserProfile

	nameInput    components.TextInput
	levelChoice  components.Choice
	streamChoice components.Choice
	degreeChoice components.Choice

	errMsg string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen. The next factory receives the completed
// profile and produces the screen that replaces this one.
func New(next func(quiz.UserProfile) screen.Screen) *ProfileScreen {
	s := &ProfileScreen{
		next:      next,
		nameInput: components.NewTextInput("Your name...", false, 40),
	}

	levels := quiz.AllEducationLevels()
	levelLabels := make([]string, len(levels))
	for i, l := range levels {
		info := quiz.LevelDisplay(l)
		levelLabels[i] = fmt.Sprintf("%s — %s", info.Label, info.Description)
	}
	s.levelChoice = components.NewChoice("Where are you in your studies?", levelLabels, func(i int) tea.Cmd {
		return s.chooseLevel(levels[i])
	})

	streams := quiz.AllStreams()
	streamLabels := make([]string, len(streams))
	for i, st := range streams {
		info := quiz.StreamDisplay(st)
		streamLabels[i] = fmt.Sprintf("%s — %s", info.Label, info.Subjects)
	}
	s.streamChoice = components.NewChoice("Which stream are you studying?", streamLabels, func(i int) tea.Cmd {
		return s.chooseStream(streams[i])
	})

	degrees := quiz.AllDegreeTypes()
	degreeLabels := make([]string, len(degrees))
	for i, d := range degrees {
		degreeLabels[i] = quiz.DegreeLabel(d)
	}
	s.degreeChoice = components.NewChoice("Which degree?", degreeLabels, func(i int) tea.Cmd {
		return s.chooseDegree(degrees[i])
	})

	return s
}

func (s *ProfileScreen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *ProfileScreen) Title() string {
	return "About You"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Confirm"},
	}
	if s.step != stepName {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Navigate"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, s.back()
		case "enter":
			if s.step == stepName {
				return s, s.submitName()
			}
		}
	}

	var cmd tea.Cmd
	switch s.step {
	case stepName:
		s.nameInput, cmd = s.nameInput.Update(msg)
	case stepLevel:
		s.levelChoice, cmd = s.levelChoice.Update(msg)
	case stepStream:
		s.streamChoice, cmd = s.streamChoice.Update(msg)
	case stepDegree:
		s.degreeChoice, cmd = s.degreeChoice.Update(msg)
	}
	return s, cmd
}

func (s *ProfileScreen) submitName() tea.Cmd {
	name := strings.TrimSpace(s.nameInput.Value())
	if name == "" {
		s.errMsg = "Please tell us your name first."
		return nil
	}
	s.errMsg = ""
	s.profile.Name = name
	s.step = stepLevel
	return nil
}

func (s *ProfileScreen) chooseLevel(l quiz.EducationLevel) tea.Cmd {
	s.profile.EducationLevel = l
	switch {
	case l.HasStreamChoice():
		s.step = stepStream
		return nil
	case l.HasDegree():
		s.step = stepDegree
		return nil
	}
	return s.finish()
}

func (s *ProfileScreen) chooseStream(st quiz.Stream) tea.Cmd {
	s.profile.CurrentStream = st
	return s.finish()
}

func (s *ProfileScreen) chooseDegree(d quiz.DegreeType) tea.Cmd {
	s.profile.DegreeType = d
	return s.finish()
}

func (s *ProfileScreen) finish() tea.Cmd {
	if err := s.profile.Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	nextScreen := s.next(s.profile)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

// back steps to the previous stage, or leaves the collector entirely
// from the first one.
func (s *ProfileScreen) back() tea.Cmd {
	switch s.step {
	case stepName:
		return func() tea.Msg { return router.PopScreenMsg{} }
	case stepLevel:
		s.step = stepName
	case stepStream, stepDegree:
		s.profile.CurrentStream = ""
		s.profile.DegreeType = ""
		s.step = stepLevel
	}
	s.errMsg = ""
	return nil
}

func (s *ProfileScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Step %d of %d", s.stepNumber(), s.stepTotal())))
	b.WriteString("\n\n")

	var body string
	switch s.step {
	case stepName:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("What should we call you?")
		body = prompt + "\n\n" + s.nameInput.View()
	case stepLevel:
		body = s.levelChoice.View()
	case stepStream:
		body = s.streamChoice.View()
	case stepDegree:
		body = s.degreeChoice.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}

func (s *ProfileScreen) stepNumber() int {
	// Stream and degree are alternatives, so degree is still stage 3.
	if s.step == stepDegree {
		return 3
	}
	return int(s.step) + 1
}

// stepTotal depends on the level chosen at step 2: school levels without
// a stream and 10th/12th-passed levels stop after two steps.
func (s *ProfileScreen) stepTotal() int {
	l := s.profile.EducationLevel
	if l.HasStreamChoice() || l.HasDegree() {
		return 3
	}
	if s.step < stepStream {
		return 3 // unknown yet; show the longest path
	}
	return 2
}
