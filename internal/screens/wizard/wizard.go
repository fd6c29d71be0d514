package wizard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/router"
	"github.com/abhisek/disha/internal/screen"
	"github.com/abhisek/disha/internal/scoring"
	"github.com/abhisek/disha/internal/store"
	"github.com/abhisek/disha/internal/ui/components"
	"github.com/abhisek/disha/internal/ui/layout"
	"github.com/abhisek/disha/internal/webhook"
)

// Deps are the collaborators a quiz run needs: persistence for
// autosaved progress and completed attempts, the optional webhook
// client, and a factory for the screen shown after submission.
type Deps struct {
	Profiles store.ProfileRepo
	Progress store.ProgressRepo
	Attempts store.AttemptRepo
	Hook     *webhook.Client

	ResultsFactory func(*store.Attempt) screen.Screen
}

// WizardScreen walks the respondent through the filtered question set
// one question at a time, autosaving after every answer.
type WizardScreen struct {
	deps    Deps
	profile quiz.UserProfile

	questions []quiz.Question
	answers   quiz.Answers
	idx       int

	single components.Choice
	multi  components.MultiSelect

	reviewing          bool
	showingQuitConfirm bool
	submitting         bool
	errMsg             string
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)

// New starts a fresh quiz for the given profile.
func New(profile quiz.UserProfile, deps Deps) *WizardScreen {
	return &WizardScreen{
		deps:    deps,
		profile: profile,
		answers: make(quiz.Answers),
	}
}

// Resume continues a previously autosaved quiz.
func Resume(progress store.Progress, deps Deps) *WizardScreen {
	answers := progress.Answers
	if answers == nil {
		answers = make(quiz.Answers)
	}
	return &WizardScreen{
		deps:    deps,
		profile: progress.Profile,
		answers: answers,
		idx:     progress.Position,
	}
}

func (s *WizardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		bank, err := quiz.LoadBank()
		if err != nil {
			return wizardInitMsg{Err: err}
		}
		return wizardInitMsg{Questions: quiz.FilterQuestions(bank.Questions, s.profile)}
	}
}

func (s *WizardScreen) Title() string {
	return "Career Quiz"
}

func (s *WizardScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Pause quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.reviewing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "←", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "Pause"},
	}
}

func (s *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case wizardInitMsg:
		return s.handleInit(msg)

	case submittedMsg:
		return s.handleSubmitted(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *WizardScreen) handleInit(msg wizardInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.questions = msg.Questions
	if s.idx >= len(s.questions) {
		s.idx = 0
	}
	s.prepareQuestion()
	return s, nil
}

func (s *WizardScreen) handleSubmitted(msg submittedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.submitting = false
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	resultsScreen := s.deps.ResultsFactory(msg.Attempt)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: resultsScreen}
	}
}

func (s *WizardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state — any key goes back.
	if s.errMsg != "" && len(s.questions) == 0 {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.submitting {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.saveProgress()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.reviewing {
		switch key {
		case "enter":
			return s.submit()
		case "left", "h", "esc":
			s.reviewing = false
			s.prepareQuestion()
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "left", "h":
		if s.idx > 0 {
			s.idx--
			s.prepareQuestion()
		}
		return s, nil
	case "right", "l":
		// Forward only over already-answered questions.
		if s.idx < len(s.questions)-1 {
			if _, answered := s.answers[s.current().ID]; answered {
				s.idx++
				s.prepareQuestion()
			}
		}
		return s, nil
	}

	var cmd tea.Cmd
	if s.current().Type == quiz.TypeMulti {
		s.multi, cmd = s.multi.Update(msg)
	} else {
		s.single, cmd = s.single.Update(msg)
	}
	return s, cmd
}

func (s *WizardScreen) current() quiz.Question {
	if s.idx < 0 || s.idx >= len(s.questions) {
		return quiz.Question{}
	}
	return s.questions[s.idx]
}

// prepareQuestion rebuilds the input component for the current question,
// preselecting any earlier answer.
func (s *WizardScreen) prepareQuestion() {
	q := s.current()
	if q.ID == "" {
		return
	}

	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Label
	}

	if q.Type == quiz.TypeMulti {
		max := q.MaxSelections(s.multiDefault())
		s.multi = components.NewMultiSelect(q.Prompt, labels, max, func(indices []int) tea.Cmd {
			ids := make([]string, len(indices))
			for i, idx := range indices {
				ids[i] = q.Options[idx].ID
			}
			return s.record(q.ID, quiz.MultiAnswer(ids...))
		})
		if prev, ok := s.answers[q.ID]; ok {
			s.multi = s.multi.Preselect(s.optionIndices(q, prev.OptionIDs()))
		}
		return
	}

	s.single = components.NewChoice(q.Prompt, labels, func(i int) tea.Cmd {
		return s.record(q.ID, quiz.SingleAnswer(q.Options[i].ID))
	})
	if prev, ok := s.answers[q.ID]; ok {
		if idxs := s.optionIndices(q, prev.OptionIDs()); len(idxs) > 0 {
			s.single = s.single.Preselect(idxs[0])
		}
	}
}

func (s *WizardScreen) optionIndices(q quiz.Question, ids []string) []int {
	var out []int
	for _, id := range ids {
		for i, o := range q.Options {
			if o.ID == id {
				out = append(out, i)
			}
		}
	}
	return out
}

func (s *WizardScreen) multiDefault() int {
	if bank, err := quiz.LoadBank(); err == nil && bank.Meta.MultiSelectMaxDefault > 0 {
		return bank.Meta.MultiSelectMaxDefault
	}
	return 3
}

// record stores an answer and advances, autosaving progress.
func (s *WizardScreen) record(questionID string, ans quiz.Answer) tea.Cmd {
	s.answers[questionID] = ans

	if s.idx < len(s.questions)-1 {
		s.idx++
		s.prepareQuestion()
	} else {
		s.reviewing = true
	}

	s.saveProgress()
	return nil
}

func (s *WizardScreen) saveProgress() {
	if s.deps.Progress == nil {
		return
	}
	_ = s.deps.Progress.Save(context.Background(), store.Progress{
		Profile:   s.profile,
		Answers:   s.answers,
		Position:  s.idx,
		UpdatedAt: time.Now(),
	})
}

// submit runs the scoring pipeline, persists the attempt, clears the
// autosaved progress, and fires the webhook if one is configured.
func (s *WizardScreen) submit() (screen.Screen, tea.Cmd) {
	s.submitting = true
	s.errMsg = ""

	profile := s.profile
	answers := s.answers
	questions := s.questions
	deps := s.deps

	return s, func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		results := scoring.Calculate(answers, questions, profile, now)

		attempt := &store.Attempt{
			Profile: profile,
			Answers: answers,
			Results: results,
			TakenAt: now,
		}
		if deps.Attempts != nil {
			if err := deps.Attempts.Save(ctx, attempt); err != nil {
				return submittedMsg{Err: err}
			}
		}
		if deps.Progress != nil {
			_ = deps.Progress.Clear(ctx)
		}
		if deps.Profiles != nil {
			_ = deps.Profiles.Save(ctx, profile)
		}

		delivered := false
		if deps.Hook != nil && deps.Hook.Enabled() {
			delivered = deps.Hook.Submit(ctx, results, answers)
		}

		return submittedMsg{Attempt: attempt, Delivered: delivered}
	}
}

// answeredCount reports how many of the filtered questions have answers.
func (s *WizardScreen) answeredCount() int {
	n := 0
	for _, q := range s.questions {
		if _, ok := s.answers[q.ID]; ok {
			n++
		}
	}
	return n
}
