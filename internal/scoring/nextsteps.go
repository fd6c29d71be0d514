package scoring

import (
	"fmt"
	"strings"

	"github.com/abhisek/disha/internal/quiz"
)

// High-score thresholds for the special-interest call-outs.
const (
	defenseCalloutFloor = 15
	upscCalloutFloor    = 15
)

// NextSteps generates the ordered guidance list: stage-specific advice
// first, then secondary-interest call-outs, then a constant closing
// suggestion. This is presentation text regenerable from the rest of the
// results; only the conditional structure is contractual.
func NextSteps(
	streamRec StreamRecommendation,
	jeeRec JEERecommendation,
	tracks TrackScores,
	topTracks []TopTrack,
	profile quiz.UserProfile,
	automotiveInterest bool,
) []string {
	var steps []string

	switch profile.EducationLevel {
	case quiz.Level10thPassed:
		if streamRec != StreamRecNotApplicable {
			steps = append(steps, fmt.Sprintf("📚 Recommended Stream: %s", streamRec))
			steps = append(steps, streamAdvice(streamRec, jeeRec)...)
		}

	case quiz.Level11thCurrent, quiz.Level12thCurrent:
		steps = append(steps, "Focus on your current subjects and boards")
		if jeeRec == JEEGo && profile.CurrentStream.IsScienceMaths() {
			steps = append(steps, "JEE preparation aligns well with your interests")
		}
		if len(topTracks) > 0 {
			steps = append(steps, fmt.Sprintf("Explore: %s", topTracks[0].Track.Info().Name))
		}

	case quiz.Level12thPassed:
		steps = append(steps, "Time to choose your degree/career path!")
		if len(topTracks) > 0 {
			info := topTracks[0].Track.Info()
			if len(info.Exams) > 0 {
				steps = append(steps, fmt.Sprintf("Key exams to consider: %s", joinFirst(info.Exams, 3)))
			}
			if len(info.Colleges) > 0 {
				steps = append(steps, fmt.Sprintf("Top colleges: %s", joinFirst(info.Colleges, 3)))
			}
		}

	case quiz.LevelDegreeCurrent:
		steps = append(steps, "Explore internships and skill-building opportunities")
		if len(topTracks) > 0 {
			steps = append(steps, fmt.Sprintf("Your interests align with: %s", topTracks[0].Track.Info().Name))
		}

	case quiz.LevelDegreeCompleted:
		steps = append(steps, "Consider these career paths based on your profile:")
		for i, tt := range topTracks {
			if i >= 3 {
				break
			}
			info := tt.Track.Info()
			steps = append(steps, fmt.Sprintf("• %s: %s", info.Name, joinFirst(info.Careers, 2)))
		}
	}

	if automotiveInterest && isSchoolStage(profile.EducationLevel) {
		steps = append(steps,
			"🏎️ Strong automotive interest detected!",
			"Look into Mechanical/Automobile Engineering branches",
			"Explore Formula Student teams & SAE competitions",
		)
	}

	if tracks[quiz.TrackDefenseForces] > defenseCalloutFloor {
		steps = append(steps,
			"🪖 Consider NDA after 12th or CDS after graduation",
			"Start physical fitness preparation early",
		)
	}

	if tracks[quiz.TrackUPSCCivil] > upscCalloutFloor && isGraduateStage(profile.EducationLevel) {
		steps = append(steps,
			"⚖️ UPSC Civil Services could be a great fit",
			"Any graduation degree works; start reading newspapers",
		)
	}

	steps = append(steps, "💬 Talk to professionals in your areas of interest")
	return steps
}

// streamAdvice expands the stream recommendation into subject guidance,
// with conditional JEE advice under the PCM branch.
func streamAdvice(streamRec StreamRecommendation, jeeRec JEERecommendation) []string {
	switch streamRec {
	case StreamRecPCM:
		steps := []string{"Choose Physics, Chemistry, Maths in 11th standard"}
		switch jeeRec {
		case JEEGo:
			steps = append(steps, "✅ JEE Coaching recommended - you have the aptitude!")
		case JEEMaybe:
			steps = append(steps, "🤔 Try self-study for 3 months before joining coaching")
		default:
			steps = append(steps, "Focus on board exams; explore other engineering paths")
		}
		return steps
	case StreamRecPCB:
		return []string{
			"Choose Physics, Chemistry, Biology in 11th standard",
			"Start NEET preparation alongside boards",
		}
	case StreamRecPCMB:
		return []string{
			"Consider taking all 4 subjects if school allows",
			"This keeps both engineering and medical options open",
		}
	case StreamRecCommerce:
		return []string{
			"Choose Commerce stream in 11th standard",
			"Take Maths if interested in CA/finance",
		}
	case StreamRecArtsDesign:
		return []string{
			"Choose Arts/Humanities or Commerce",
			"Start building your creative portfolio",
		}
	}
	return nil
}

func isSchoolStage(l quiz.EducationLevel) bool {
	return l == quiz.Level10thPassed || l == quiz.Level11thCurrent || l == quiz.Level12thCurrent
}

func isGraduateStage(l quiz.EducationLevel) bool {
	return l == quiz.Level12thPassed || l == quiz.LevelDegreeCurrent || l == quiz.LevelDegreeCompleted
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
