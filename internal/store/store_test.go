package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testProfile() quiz.UserProfile {
	return quiz.UserProfile{Name: "Asha", EducationLevel: quiz.Level10thPassed}
}

func testAttempt(takenAt time.Time) *Attempt {
	profile := testProfile()
	answers := quiz.Answers{
		"q1": quiz.SingleAnswer("a"),
		"q3": quiz.MultiAnswer("a", "c"),
	}
	results := scoring.Calculate(answers, nil, profile, takenAt)
	return &Attempt{
		Profile: profile,
		Answers: answers,
		Results: results,
		TakenAt: takenAt,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"profile", "progress", "attempts"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestProfileRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	// Nothing stored yet.
	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when none stored")
	}

	if err := repo.Save(ctx, testProfile()); err != nil {
		t.Fatalf("save: %v", err)
	}
	p, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p == nil || p.Name != "Asha" || p.EducationLevel != quiz.Level10thPassed {
		t.Errorf("loaded profile = %+v", p)
	}

	// Save replaces, never accumulates.
	updated := quiz.UserProfile{Name: "Ravi", EducationLevel: quiz.Level11thCurrent, CurrentStream: quiz.StreamPCM}
	if err := repo.Save(ctx, updated); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	p, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (update): %v", err)
	}
	if p.Name != "Ravi" || p.CurrentStream != quiz.StreamPCM {
		t.Errorf("updated profile = %+v", p)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	p, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (cleared): %v", err)
	}
	if p != nil {
		t.Error("profile survived clear")
	}
}

func TestProgressRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	p, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil progress when none stored")
	}

	saved := Progress{
		Profile: testProfile(),
		Answers: quiz.Answers{
			"q1": quiz.SingleAnswer("b"),
			"q3": quiz.MultiAnswer("a", "d"),
		},
		Position:  7,
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	p, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Position != 7 {
		t.Errorf("position = %d, want 7", p.Position)
	}
	if !p.Answers.SingleIs("q1", "b") {
		t.Errorf("q1 answer lost: %+v", p.Answers)
	}
	if !p.Answers["q3"].IsMulti() {
		t.Error("multi answer lost its kind through persistence")
	}

	// A second save overwrites the single slot.
	saved.Position = 9
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save (update): %v", err)
	}
	p, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (update): %v", err)
	}
	if p.Position != 9 {
		t.Errorf("position = %d, want 9 after overwrite", p.Position)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	p, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (cleared): %v", err)
	}
	if p != nil {
		t.Error("progress survived clear")
	}
}

func TestAttemptRepoSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	a, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if a != nil {
		t.Fatal("expected nil attempt when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	saved := testAttempt(now)
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("save did not assign an id")
	}

	a, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if a == nil {
		t.Fatal("expected non-nil attempt")
	}
	if a.ID != saved.ID {
		t.Errorf("id = %q, want %q", a.ID, saved.ID)
	}
	if a.Results.StreamRecommendation != saved.Results.StreamRecommendation {
		t.Errorf("results lost through persistence: %+v", a.Results)
	}
	if !a.Answers["q3"].IsMulti() {
		t.Error("multi answer lost its kind through persistence")
	}
	if !a.TakenAt.Equal(now) {
		t.Errorf("takenAt = %v, want %v", a.TakenAt, now)
	}
}

func TestAttemptRepoGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	saved := testAttempt(time.Now().UTC().Truncate(time.Second))
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	a, err := repo.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if a == nil || a.ID != saved.ID {
		t.Errorf("get returned %+v", a)
	}

	a, err = repo.Get(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("get (missing): %v", err)
	}
	if a != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestAttemptRepoListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		if err := repo.Save(ctx, testAttempt(base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	attempts, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("len = %d, want 3", len(attempts))
	}
	for i := 1; i < len(attempts); i++ {
		if attempts[i].TakenAt.After(attempts[i-1].TakenAt) {
			t.Errorf("attempts not newest first at %d", i)
		}
	}

	limited, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list (limit): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited len = %d, want 2", len(limited))
	}
}

func TestAttemptRepoPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		if err := repo.Save(ctx, testAttempt(base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}
	attempts, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 5 {
		t.Errorf("remaining = %d, want 5", len(attempts))
	}
	// The newest must survive.
	if !attempts[0].TakenAt.Equal(base.Add(6 * time.Minute)) {
		t.Errorf("newest attempt pruned: %v", attempts[0].TakenAt)
	}

	// Prune with more slots than rows is a no-op.
	if err := repo.Prune(ctx, 10); err != nil {
		t.Fatalf("prune (no-op): %v", err)
	}
	attempts, err = repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 5 {
		t.Errorf("no-op prune changed count to %d", len(attempts))
	}
}

func TestAttemptRepoDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testAttempt(time.Now().UTC())); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	attempts, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("attempts survived delete all: %d", len(attempts))
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	t.Setenv("DISHA_DB", t.TempDir()+"/custom/disha.db")

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p == "" || p[len(p)-len("disha.db"):] != "disha.db" {
		t.Errorf("path = %q", p)
	}

	// The parent directory must exist afterwards.
	s, err := Open(p)
	if err != nil {
		t.Fatalf("open at resolved path: %v", err)
	}
	s.Close()
}
