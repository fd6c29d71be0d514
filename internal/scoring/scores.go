// Package scoring implements the career-discovery scoring engine: a
// deterministic, pure pipeline from (answers, questions, profile) to a
// composed Results snapshot. No stage performs I/O or mutates shared
// state; callers persist and render the output.
package scoring

import "github.com/abhisek/disha/internal/quiz"

// TrackScores holds one integer score per track. Raw scores are unclamped
// and may be negative; percentages are clamped to [0,100].
type TrackScores map[quiz.Track]int

// NewTrackScores returns a TrackScores with every track present at zero.
func NewTrackScores() TrackScores {
	s := make(TrackScores, quiz.NumTracks)
	for _, t := range quiz.AllTracks() {
		s[t] = 0
	}
	return s
}

// MeterNeutral is the starting midpoint for every meter.
const MeterNeutral = 5

// Meter bounds.
const (
	MeterMin = 0
	MeterMax = 10
)

// MeterScores holds the three bounded [0,10] trait meters.
type MeterScores struct {
	RoutineTolerance int `json:"routineTolerance"`
	StressTolerance  int `json:"stressTolerance"`
	Clarity          int `json:"clarity"`
}

// NewMeterScores returns meters at the neutral midpoint.
func NewMeterScores() MeterScores {
	return MeterScores{
		RoutineTolerance: MeterNeutral,
		StressTolerance:  MeterNeutral,
		Clarity:          MeterNeutral,
	}
}

// Clamp bounds every meter to [MeterMin, MeterMax].
func (m MeterScores) Clamp() MeterScores {
	return MeterScores{
		RoutineTolerance: clampInt(m.RoutineTolerance, MeterMin, MeterMax),
		StressTolerance:  clampInt(m.StressTolerance, MeterMin, MeterMax),
		Clarity:          clampInt(m.Clarity, MeterMin, MeterMax),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
