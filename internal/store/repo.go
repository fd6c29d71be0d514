package store

import (
	"context"
	"time"

	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/scoring"
)

// Progress is a resumable in-flight quiz: the profile it was started
// with, the answers so far, and the wizard position. One per database;
// starting a new quiz overwrites it.
type Progress struct {
	Profile   quiz.UserProfile
	Answers   quiz.Answers
	Position  int
	UpdatedAt time.Time
}

// Attempt is one completed quiz pass, frozen at submission time.
type Attempt struct {
	ID      string
	Profile quiz.UserProfile
	Answers quiz.Answers
	Results scoring.Results
	TakenAt time.Time
}

// ProfileRepo persists the active respondent profile across runs.
type ProfileRepo interface {
	// Save stores the profile, replacing any previous one.
	Save(ctx context.Context, p quiz.UserProfile) error

	// Load returns the stored profile, or nil if none exists.
	Load(ctx context.Context) (*quiz.UserProfile, error)

	// Clear removes the stored profile.
	Clear(ctx context.Context) error
}

// ProgressRepo persists the single resumable in-flight quiz.
type ProgressRepo interface {
	// Save stores the progress, replacing any previous one.
	Save(ctx context.Context, p Progress) error

	// Load returns the stored progress, or nil if none exists.
	Load(ctx context.Context) (*Progress, error)

	// Clear removes the stored progress.
	Clear(ctx context.Context) error
}

// AttemptRepo manages the history of completed attempts.
type AttemptRepo interface {
	// Save stores a completed attempt.
	Save(ctx context.Context, a *Attempt) error

	// Get returns the attempt with the given id, or nil if absent.
	Get(ctx context.Context, id string) (*Attempt, error)

	// Latest returns the most recent attempt, or nil if none exist.
	Latest(ctx context.Context) (*Attempt, error)

	// List returns attempts newest first, at most limit (0 = unlimited).
	List(ctx context.Context, limit int) ([]Attempt, error)

	// Prune deletes all but the N most recent attempts.
	Prune(ctx context.Context, keep int) error

	// DeleteAll removes every attempt.
	DeleteAll(ctx context.Context) error
}
