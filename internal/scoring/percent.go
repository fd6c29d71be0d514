package scoring

import (
	"math"

	"github.com/abhisek/disha/internal/quiz"
)

// maxPossible is the hand-tuned maximum raw score per track, reflecting
// how many bank questions can contribute to it and their typical weight.
// These constants must stay stable across bank versions so historical
// results remain comparable.
var maxPossible = TrackScores{
	quiz.TrackJEEPCM:         60,
	quiz.TrackPCBMed:         30,
	quiz.TrackCommerce:       45,
	quiz.TrackCodingIT:       45,
	quiz.TrackDesignCreative: 55,
	quiz.TrackGovtServices:   20,
	quiz.TrackAutomotiveMech: 50,
	quiz.TrackUPSCCivil:      25,
	quiz.TrackDefenseForces:  30,
	quiz.TrackAviation:       25,
	quiz.TrackMaritime:       20,
	quiz.TrackLawLegal:       20,
	quiz.TrackMedia:          20,
	quiz.TrackPsychology:     20,
	quiz.TrackSportsFitness:  20,
	quiz.TrackResearch:       20,
	quiz.TrackAgriculture:    20,
	quiz.TrackHospitality:    15,
}

// Percentages converts raw track scores into 0-100 percentages against the
// fixed per-track maxima. The transform is lossy at the boundaries: any
// score at or below zero maps to 0, any score at or above the max to 100.
// Rounding is to the nearest integer, half away from zero.
func Percentages(tracks TrackScores) TrackScores {
	out := NewTrackScores()
	for _, t := range quiz.AllTracks() {
		pct := int(math.Round(float64(tracks[t]) / float64(maxPossible[t]) * 100))
		out[t] = clampInt(pct, 0, 100)
	}
	return out
}
