package scoring

import "github.com/abhisek/disha/internal/quiz"

// JEERecommendation is the go/maybe/no verdict for committing to JEE
// preparation.
type JEERecommendation string

const (
	JEEGo            JEERecommendation = "GO"
	JEEMaybe         JEERecommendation = "MAYBE"
	JEENo            JEERecommendation = "NO"
	JEENotApplicable JEERecommendation = "Not Applicable"
)

// Meter floors a GO verdict requires.
const (
	jeeRoutineFloor = 6
	jeeStressFloor  = 5
)

// RecommendJEE gates the JEE verdict on profile eligibility, then checks
// GO conditions before NO conditions: a respondent can simultaneously
// carry a partial GO signal and a negative-flag NO signal, and GO wins
// that tie by design. MAYBE needs some real interest; NO is the floor.
//
// The stream check deliberately skips 10th-passed profiles: no stream has
// been chosen yet, so JEE remains potentially open.
func RecommendJEE(
	tracks TrackScores,
	meters MeterScores,
	answers quiz.Answers,
	flags []RiskFlag,
	profile quiz.UserProfile,
) JEERecommendation {
	switch profile.EducationLevel {
	case quiz.Level10thPassed, quiz.Level11thCurrent, quiz.Level12thCurrent:
	default:
		return JEENotApplicable
	}

	if profile.EducationLevel != quiz.Level10thPassed &&
		profile.CurrentStream != "" &&
		!profile.CurrentStream.IsScienceMaths() {
		return JEENotApplicable
	}

	negativeCommit := answers.SingleIs(examCommitQuestion1ID, examCommitNegativeOpt) ||
		answers.SingleIs(examCommitQuestion2ID, examCommitNegativeOpt)

	if tracks[quiz.TrackJEEPCM] >= jeeInterestFloor &&
		meters.RoutineTolerance >= jeeRoutineFloor &&
		meters.StressTolerance >= jeeStressFloor &&
		!negativeCommit {
		return JEEGo
	}

	if hasFlag(flags, FlagRoutineMismatch) || hasFlag(flags, FlagLowPersistence) || negativeCommit {
		return JEENo
	}

	if tracks[quiz.TrackJEEPCM] > 5 {
		return JEEMaybe
	}

	return JEENo
}
