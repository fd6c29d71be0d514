package wizard

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/router"
	"github.com/abhisek/disha/internal/screen"
	"github.com/abhisek/disha/internal/store"
)

// memProgress implements store.ProgressRepo in memory.
type memProgress struct {
	saved *store.Progress
}

func (m *memProgress) Save(_ context.Context, p store.Progress) error {
	cp := p
	m.saved = &cp
	return nil
}
func (m *memProgress) Load(_ context.Context) (*store.Progress, error) { return m.saved, nil }
func (m *memProgress) Clear(_ context.Context) error                   { m.saved = nil; return nil }

// memAttempts implements store.AttemptRepo in memory.
type memAttempts struct {
	attempts []*store.Attempt
}

func (m *memAttempts) Save(_ context.Context, a *store.Attempt) error {
	if a.ID == "" {
		a.ID = "attempt-1"
	}
	m.attempts = append(m.attempts, a)
	return nil
}
func (m *memAttempts) Get(_ context.Context, id string) (*store.Attempt, error) {
	for _, a := range m.attempts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (m *memAttempts) Latest(_ context.Context) (*store.Attempt, error) {
	if len(m.attempts) == 0 {
		return nil, nil
	}
	return m.attempts[len(m.attempts)-1], nil
}
func (m *memAttempts) List(_ context.Context, _ int) ([]store.Attempt, error) {
	var out []store.Attempt
	for i := len(m.attempts) - 1; i >= 0; i-- {
		out = append(out, *m.attempts[i])
	}
	return out, nil
}
func (m *memAttempts) Prune(_ context.Context, _ int) error { return nil }
func (m *memAttempts) DeleteAll(_ context.Context) error    { m.attempts = nil; return nil }

// resultsStub is the screen the wizard hands off to after submission.
type resultsStub struct {
	attempt *store.Attempt
}

func (r *resultsStub) Init() tea.Cmd                           { return nil }
func (r *resultsStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return r, nil }
func (r *resultsStub) View(int, int) string                    { return "results" }
func (r *resultsStub) Title() string                           { return "Results" }

func fixtureQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID: "q1", Round: "Round 1", Type: quiz.TypeSingle, Prompt: "Pick one",
			Options: []quiz.QuestionOption{
				{ID: "a", Label: "First"},
				{ID: "b", Label: "Second"},
			},
		},
		{
			ID: "q2", Round: "Round 1", Type: quiz.TypeMulti, Prompt: "Pick two", MultiSelectMax: 2,
			Options: []quiz.QuestionOption{
				{ID: "a", Label: "Alpha"},
				{ID: "b", Label: "Beta"},
				{ID: "c", Label: "Gamma"},
			},
		},
		{
			ID: "q3", Round: "Round 2", Type: quiz.TypeSingle, Prompt: "Pick again",
			Options: []quiz.QuestionOption{
				{ID: "a", Label: "Yes"},
				{ID: "b", Label: "No"},
			},
		},
	}
}

func testProfile() quiz.UserProfile {
	return quiz.UserProfile{Name: "Asha", EducationLevel: quiz.Level10thPassed}
}

func newTestWizard(t *testing.T) (*WizardScreen, *memProgress, *memAttempts) {
	t.Helper()
	progress := &memProgress{}
	attempts := &memAttempts{}
	deps := Deps{
		Progress: progress,
		Attempts: attempts,
		ResultsFactory: func(a *store.Attempt) screen.Screen {
			return &resultsStub{attempt: a}
		},
	}
	w := New(testProfile(), deps)
	w.Update(wizardInitMsg{Questions: fixtureQuestions()})
	return w, progress, attempts
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestAnswerAdvancesAndAutosaves(t *testing.T) {
	w, progress, _ := newTestWizard(t)

	// Confirm the default (first) option of q1.
	w.Update(specialKey(tea.KeyEnter))

	if got := w.answers["q1"]; got.Single() != "a" {
		t.Errorf("expected q1 answered with 'a', got %+v", got)
	}
	if w.idx != 1 {
		t.Errorf("expected position 1 after answering, got %d", w.idx)
	}
	if progress.saved == nil {
		t.Fatal("expected progress autosaved after answering")
	}
	if progress.saved.Position != 1 {
		t.Errorf("expected saved position 1, got %d", progress.saved.Position)
	}
	if progress.saved.Answers["q1"].Single() != "a" {
		t.Errorf("expected saved answer for q1, got %+v", progress.saved.Answers["q1"])
	}
}

func TestMultiSelectionRecordsAllChoices(t *testing.T) {
	w, _, _ := newTestWizard(t)

	w.Update(specialKey(tea.KeyEnter)) // answer q1, land on q2 (multi)

	w.Update(specialKey(tea.KeySpace)) // toggle "a"
	w.Update(specialKey(tea.KeyDown))
	w.Update(specialKey(tea.KeySpace)) // toggle "b"
	w.Update(specialKey(tea.KeyEnter)) // confirm

	got := w.answers["q2"]
	if !got.IsMulti() {
		t.Fatalf("expected multi answer for q2, got %+v", got)
	}
	ids := got.OptionIDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Errorf("expected [a b], got %v", ids)
	}
	if w.idx != 2 {
		t.Errorf("expected position 2, got %d", w.idx)
	}
}

func TestMultiSelectionCapEnforced(t *testing.T) {
	w, _, _ := newTestWizard(t)
	w.Update(specialKey(tea.KeyEnter)) // to q2

	// Try to check three options when the cap is two.
	w.Update(specialKey(tea.KeySpace))
	w.Update(specialKey(tea.KeyDown))
	w.Update(specialKey(tea.KeySpace))
	w.Update(specialKey(tea.KeyDown))
	w.Update(specialKey(tea.KeySpace))
	w.Update(specialKey(tea.KeyEnter))

	if got := len(w.answers["q2"].OptionIDs()); got != 2 {
		t.Errorf("expected selection capped at 2, got %d", got)
	}
}

func TestBackNavigationKeepsEarlierAnswer(t *testing.T) {
	w, _, _ := newTestWizard(t)

	w.Update(specialKey(tea.KeyDown))  // move cursor to "b"
	w.Update(specialKey(tea.KeyEnter)) // answer q1 with "b"

	w.Update(specialKey(tea.KeyLeft)) // back to q1
	if w.idx != 0 {
		t.Fatalf("expected position 0 after back, got %d", w.idx)
	}
	if w.single.Chosen != 1 {
		t.Errorf("expected earlier choice preselected, got %d", w.single.Chosen)
	}

	// Re-answering overwrites.
	w.Update(specialKey(tea.KeyUp))
	w.Update(specialKey(tea.KeyEnter))
	if got := w.answers["q1"].Single(); got != "a" {
		t.Errorf("expected q1 overwritten with 'a', got %q", got)
	}
}

func TestPauseSavesAndPops(t *testing.T) {
	w, progress, _ := newTestWizard(t)

	w.Update(specialKey(tea.KeyEnter)) // answer q1

	w.Update(specialKey(tea.KeyEscape))
	if !w.showingQuitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	_, cmd := w.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command after confirming pause")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if progress.saved == nil {
		t.Fatal("expected progress saved on pause")
	}
}

func TestPauseDeclinedKeepsGoing(t *testing.T) {
	w, _, _ := newTestWizard(t)

	w.Update(specialKey(tea.KeyEscape))
	w.Update(keyPress('n'))
	if w.showingQuitConfirm {
		t.Error("expected quit confirmation dismissed")
	}
}

func TestSubmitStoresAttemptAndClearsProgress(t *testing.T) {
	w, progress, attempts := newTestWizard(t)

	// Answer all three questions.
	w.Update(specialKey(tea.KeyEnter)) // q1
	w.Update(specialKey(tea.KeySpace)) // q2
	w.Update(specialKey(tea.KeyEnter))
	w.Update(specialKey(tea.KeyEnter)) // q3

	if !w.reviewing {
		t.Fatal("expected review state after last question")
	}

	_, cmd := w.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	msg := cmd()
	submitted, ok := msg.(submittedMsg)
	if !ok {
		t.Fatalf("expected submittedMsg, got %T", msg)
	}
	if submitted.Err != nil {
		t.Fatalf("unexpected submit error: %v", submitted.Err)
	}

	if len(attempts.attempts) != 1 {
		t.Fatalf("expected one stored attempt, got %d", len(attempts.attempts))
	}
	stored := attempts.attempts[0]
	if stored.Profile.Name != "Asha" {
		t.Errorf("expected profile carried into attempt, got %q", stored.Profile.Name)
	}
	if stored.Results.UserProfile.Name != "Asha" {
		t.Error("expected results computed for the profile")
	}
	if progress.saved != nil {
		t.Error("expected progress cleared after submission")
	}

	// The submitted message replaces the wizard with the results screen.
	_, replaceCmd := w.Update(submitted)
	if replaceCmd == nil {
		t.Fatal("expected replace command after submission")
	}
	replace, ok := replaceCmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", replaceCmd())
	}
	stub, ok := replace.Screen.(*resultsStub)
	if !ok {
		t.Fatalf("expected results screen, got %T", replace.Screen)
	}
	if stub.attempt != stored {
		t.Error("expected results screen built from the stored attempt")
	}
}

func TestResumeRestoresPositionAndAnswers(t *testing.T) {
	progress := &memProgress{}
	deps := Deps{Progress: progress}

	saved := store.Progress{
		Profile:  testProfile(),
		Answers:  quiz.Answers{"q1": quiz.SingleAnswer("b")},
		Position: 1,
	}
	w := Resume(saved, deps)
	w.Update(wizardInitMsg{Questions: fixtureQuestions()})

	if w.idx != 1 {
		t.Errorf("expected resume at position 1, got %d", w.idx)
	}
	if got := w.answers["q1"].Single(); got != "b" {
		t.Errorf("expected restored answer for q1, got %q", got)
	}
}

func TestForwardOnlyOverAnswered(t *testing.T) {
	w, _, _ := newTestWizard(t)

	// q1 unanswered: right must not advance.
	w.Update(specialKey(tea.KeyRight))
	if w.idx != 0 {
		t.Errorf("expected to stay on q1, got position %d", w.idx)
	}

	w.Update(specialKey(tea.KeyEnter)) // answer q1 → q2
	w.Update(specialKey(tea.KeyLeft))  // back to q1
	w.Update(specialKey(tea.KeyRight)) // forward allowed now
	if w.idx != 1 {
		t.Errorf("expected position 1 after forward, got %d", w.idx)
	}
}
