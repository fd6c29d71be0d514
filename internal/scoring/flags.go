package scoring

import "github.com/abhisek/disha/internal/quiz"

// RiskFlag is a qualitative warning triggered by an independent threshold
// rule. Flag strings are part of the stored-results format.
type RiskFlag string

const (
	FlagRoutineMismatch    RiskFlag = "Routine mismatch for JEE"
	FlagHighTestStress     RiskFlag = "High test stress"
	FlagLowPersistence     RiskFlag = "Low concept persistence"
	FlagLowClarity         RiskFlag = "Low clarity"
	FlagExternalMotivation RiskFlag = "External motivation only"

	// FlagStreamMismatch exists in historical result data but is not
	// produced by any current rule. Kept for decoding compatibility.
	FlagStreamMismatch RiskFlag = "Stream mismatch detected"
)

// Designated gating questions and the option ids that trigger flags and
// exam-recommendation rules. These pair with the embedded bank and must
// move in lockstep with it.
const (
	persistenceQuestionID = "q10"
	persistenceGiveUpOpt  = "c"

	examCommitQuestion1ID = "q21"
	examCommitQuestion2ID = "q22"
	examCommitNegativeOpt = "c"

	motivationQuestionID  = "q23"
	motivationExternalOpt = "c"
)

// Thresholds for flag rules. Fixed for compatibility with historical
// results data.
const (
	jeeInterestFloor    = 15 // raw jee_pcm score above which JEE interest is "real"
	routineLowThreshold = 4
	stressLowThreshold  = 3
	clarityLowThreshold = 4
)

// RiskFlags evaluates every flag predicate against the same inputs. The
// predicates are independent: no ordering dependency, no mutual exclusion.
func RiskFlags(tracks TrackScores, meters MeterScores, answers quiz.Answers) []RiskFlag {
	var flags []RiskFlag

	if tracks[quiz.TrackJEEPCM] > jeeInterestFloor && meters.RoutineTolerance < routineLowThreshold {
		flags = append(flags, FlagRoutineMismatch)
	}
	if meters.StressTolerance < stressLowThreshold {
		flags = append(flags, FlagHighTestStress)
	}
	if answers.SingleIs(persistenceQuestionID, persistenceGiveUpOpt) {
		flags = append(flags, FlagLowPersistence)
	}
	if meters.Clarity < clarityLowThreshold {
		flags = append(flags, FlagLowClarity)
	}
	if answers.SingleIs(motivationQuestionID, motivationExternalOpt) {
		flags = append(flags, FlagExternalMotivation)
	}

	return flags
}

func hasFlag(flags []RiskFlag, f RiskFlag) bool {
	for _, v := range flags {
		if v == f {
			return true
		}
	}
	return false
}
