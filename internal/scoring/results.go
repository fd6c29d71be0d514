package scoring

import (
	"time"

	"github.com/abhisek/disha/internal/quiz"
)

// Secondary-interest thresholds for the derived boolean signals.
const (
	codingAddonFloor        = 10
	automotiveInterestFloor = 15
)

// Results is the immutable snapshot produced by one completed quiz pass.
// It is computed exactly once, then persisted, exported, and rendered
// from — never recomputed in place. Everything serializes losslessly.
type Results struct {
	TrackScores          TrackScores          `json:"trackScores"`
	TrackPercentages     TrackScores          `json:"trackPercentages"`
	MeterScores          MeterScores          `json:"meterScores"`
	Confidence           int                  `json:"confidence"`
	RiskFlags            []RiskFlag           `json:"riskFlags"`
	StreamRecommendation StreamRecommendation `json:"streamRecommendation"`
	JEERecommendation    JEERecommendation    `json:"jeeRecommendation"`
	TopTracks            []TopTrack           `json:"topTracks"`
	CareerPaths          []CareerPath         `json:"careerPaths"`
	NextSteps            []string             `json:"nextSteps"`
	CodingAddon          bool                 `json:"codingAddon"`
	AutomotiveInterest   bool                 `json:"automotiveInterest"`
	Timestamp            time.Time            `json:"timestamp"`
	UserProfile          quiz.UserProfile     `json:"userProfile"`
}

// Calculate runs the full scoring pipeline. It is pure and deterministic:
// identical inputs (including now) produce identical Results. Callers pass
// time.Now() outside tests.
func Calculate(answers quiz.Answers, questions []quiz.Question, profile quiz.UserProfile, now time.Time) Results {
	raw := Accumulate(answers, questions)

	percentages := Percentages(raw.Tracks)
	confidence := Confidence(raw.AmbivalentCount, raw.NegativeCount)
	flags := RiskFlags(raw.Tracks, raw.Meters, answers)
	streamRec := RecommendStream(raw.Tracks, profile)
	jeeRec := RecommendJEE(raw.Tracks, raw.Meters, answers, flags, profile)
	topTracks := TopTracks(raw.Tracks, percentages, profile)
	careerPaths := CareerPaths(raw.Tracks, percentages, profile)

	codingAddon := raw.Tracks[quiz.TrackCodingIT] >= codingAddonFloor &&
		(len(topTracks) == 0 || topTracks[0].Track != quiz.TrackCodingIT)
	automotiveInterest := raw.Tracks[quiz.TrackAutomotiveMech] >= automotiveInterestFloor

	nextSteps := NextSteps(streamRec, jeeRec, raw.Tracks, topTracks, profile, automotiveInterest)

	return Results{
		TrackScores:          raw.Tracks,
		TrackPercentages:     percentages,
		MeterScores:          raw.Meters,
		Confidence:           confidence,
		RiskFlags:            flags,
		StreamRecommendation: streamRec,
		JEERecommendation:    jeeRec,
		TopTracks:            topTracks,
		CareerPaths:          careerPaths,
		NextSteps:            nextSteps,
		CodingAddon:          codingAddon,
		AutomotiveInterest:   automotiveInterest,
		Timestamp:            now,
		UserProfile:          profile,
	}
}
