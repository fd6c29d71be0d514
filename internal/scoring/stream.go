package scoring

import "github.com/abhisek/disha/internal/quiz"

// StreamRecommendation is the suggested 11th-standard stream.
type StreamRecommendation string

const (
	StreamRecPCM           StreamRecommendation = "PCM"
	StreamRecPCB           StreamRecommendation = "PCB"
	StreamRecPCMB          StreamRecommendation = "PCMB"
	StreamRecCommerce      StreamRecommendation = "Commerce"
	StreamRecArtsDesign    StreamRecommendation = "Arts/Design"
	StreamRecNotApplicable StreamRecommendation = "Not Applicable"
)

// RecommendStream suggests a stream for profiles at the 10th-passed stage,
// the only stage with a stream decision still ahead. Four composite
// buckets are formed by folding related secondary tracks into a primary
// one; the highest bucket wins, with PCM as the default tie-break. When
// both the engineering and medical raw scores independently clear the
// interest floor, the combined PCMB recommendation wins regardless of
// bucket totals.
func RecommendStream(tracks TrackScores, profile quiz.UserProfile) StreamRecommendation {
	if profile.EducationLevel != quiz.Level10thPassed {
		return StreamRecNotApplicable
	}

	if tracks[quiz.TrackJEEPCM] > jeeInterestFloor && tracks[quiz.TrackPCBMed] > jeeInterestFloor {
		return StreamRecPCMB
	}

	buckets := []struct {
		rec   StreamRecommendation
		total int
	}{
		{StreamRecPCM, tracks[quiz.TrackJEEPCM] + tracks[quiz.TrackAutomotiveMech] + tracks[quiz.TrackAviation]},
		{StreamRecPCB, tracks[quiz.TrackPCBMed] + tracks[quiz.TrackAgriculture]},
		{StreamRecCommerce, tracks[quiz.TrackCommerce] + tracks[quiz.TrackHospitality]},
		{StreamRecArtsDesign, tracks[quiz.TrackDesignCreative] + tracks[quiz.TrackMedia]},
	}

	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.total > best.total {
			best = b
		}
	}
	return best.rec
}
