package scoring

import "github.com/abhisek/disha/internal/quiz"

// RawScores is the output of the accumulation stage: unclamped track sums,
// clamped meters, and the sentiment tallies feeding the confidence
// heuristic.
type RawScores struct {
	Tracks          TrackScores
	Meters          MeterScores
	AmbivalentCount int
	NegativeCount   int
}

// Accumulate walks the filtered questions and sums the score-map deltas of
// every selected option. Unanswered questions contribute nothing; answer
// ids that no longer match an option are skipped silently (a bank/answer
// version mismatch must not abort scoring). Track sums are left unclamped;
// meters are clamped to [0,10] after the walk.
//
// Multi-choice answers contribute each selected option's full score map
// independently.
func Accumulate(answers quiz.Answers, questions []quiz.Question) RawScores {
	raw := RawScores{
		Tracks: NewTrackScores(),
		Meters: NewMeterScores(),
	}

	for _, q := range questions {
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}

		for _, optionID := range ans.OptionIDs() {
			opt, found := q.Option(optionID)
			if !found {
				continue
			}

			for _, t := range quiz.AllTracks() {
				if d := opt.Score.TrackDelta(t); d != 0 {
					raw.Tracks[t] += d
				}
			}
			raw.Meters.RoutineTolerance += opt.Score.MeterDelta(quiz.MeterRoutineTolerance)
			raw.Meters.StressTolerance += opt.Score.MeterDelta(quiz.MeterStressTolerance)
			raw.Meters.Clarity += opt.Score.MeterDelta(quiz.MeterClarity)

			switch opt.Sentiment {
			case quiz.SentimentAmbivalent:
				raw.AmbivalentCount++
			case quiz.SentimentNegative:
				raw.NegativeCount++
			}
		}
	}

	raw.Meters = raw.Meters.Clamp()
	return raw
}
