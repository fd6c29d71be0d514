package scoring

import (
	"testing"

	"github.com/abhisek/disha/internal/quiz"
)

// fixtureQuestions returns a small synthetic bank exercising every
// accumulation path: track deltas, meter deltas, sentiment tags, multi
// selection, and neutral options.
func fixtureQuestions() []quiz.Question {
	return []quiz.Question{
		{
			ID: "f1", Round: "R1", Type: quiz.TypeSingle, Prompt: "p1",
			Options: []quiz.QuestionOption{
				{ID: "a", Label: "strong yes", Score: quiz.OptionScore{"jee_pcm": 5, "routineTolerance": 2}},
				{ID: "b", Label: "maybe", Sentiment: quiz.SentimentAmbivalent, Score: quiz.OptionScore{"jee_pcm": 1}},
				{ID: "c", Label: "no", Sentiment: quiz.SentimentNegative, Score: quiz.OptionScore{"jee_pcm": -3, "stressTolerance": -2}},
			},
		},
		{
			ID: "f2", Round: "R1", Type: quiz.TypeMulti, Prompt: "p2", MultiSelectMax: 2,
			Options: []quiz.QuestionOption{
				{ID: "a", Label: "code", Score: quiz.OptionScore{"coding_it": 4}},
				{ID: "b", Label: "design", Score: quiz.OptionScore{"design_creative": 3, "clarity": 1}},
				{ID: "c", Label: "neutral", Score: quiz.OptionScore{}},
			},
		},
		{
			ID: "f3", Round: "R2", Type: quiz.TypeSingle, Prompt: "p3",
			Options: []quiz.QuestionOption{
				{ID: "a", Label: "calm", Score: quiz.OptionScore{"stressTolerance": 2}},
				{ID: "b", Label: "panics", Score: quiz.OptionScore{"stressTolerance": -9}},
			},
		},
	}
}

func TestAccumulate_EmptyAnswers(t *testing.T) {
	raw := Accumulate(quiz.Answers{}, fixtureQuestions())

	for _, tr := range quiz.AllTracks() {
		if raw.Tracks[tr] != 0 {
			t.Errorf("track %s = %d, want 0", tr, raw.Tracks[tr])
		}
	}
	want := NewMeterScores()
	if raw.Meters != want {
		t.Errorf("meters = %+v, want all neutral %d", raw.Meters, MeterNeutral)
	}
	if raw.AmbivalentCount != 0 || raw.NegativeCount != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", raw.AmbivalentCount, raw.NegativeCount)
	}
}

func TestAccumulate_SingleChoice(t *testing.T) {
	answers := quiz.Answers{"f1": quiz.SingleAnswer("a")}
	raw := Accumulate(answers, fixtureQuestions())

	if got := raw.Tracks[quiz.TrackJEEPCM]; got != 5 {
		t.Errorf("jee_pcm = %d, want 5", got)
	}
	if got := raw.Meters.RoutineTolerance; got != 7 {
		t.Errorf("routineTolerance = %d, want 7", got)
	}
}

func TestAccumulate_MultiChoiceContributesEachOptionFully(t *testing.T) {
	answers := quiz.Answers{"f2": quiz.MultiAnswer("a", "b")}
	raw := Accumulate(answers, fixtureQuestions())

	if got := raw.Tracks[quiz.TrackCodingIT]; got != 4 {
		t.Errorf("coding_it = %d, want 4", got)
	}
	if got := raw.Tracks[quiz.TrackDesignCreative]; got != 3 {
		t.Errorf("design_creative = %d, want 3", got)
	}
	if got := raw.Meters.Clarity; got != 6 {
		t.Errorf("clarity = %d, want 6", got)
	}
}

func TestAccumulate_NegativeScoresUnclamped(t *testing.T) {
	answers := quiz.Answers{"f1": quiz.SingleAnswer("c")}
	raw := Accumulate(answers, fixtureQuestions())

	if got := raw.Tracks[quiz.TrackJEEPCM]; got != -3 {
		t.Errorf("jee_pcm = %d, want -3 (track scores must not be clamped)", got)
	}
}

func TestAccumulate_MetersClamped(t *testing.T) {
	answers := quiz.Answers{
		"f1": quiz.SingleAnswer("c"), // stress -2
		"f3": quiz.SingleAnswer("b"), // stress -9
	}
	raw := Accumulate(answers, fixtureQuestions())

	if got := raw.Meters.StressTolerance; got != 0 {
		t.Errorf("stressTolerance = %d, want clamped to 0", got)
	}
}

func TestAccumulate_SentimentTallies(t *testing.T) {
	answers := quiz.Answers{
		"f1": quiz.SingleAnswer("b"), // ambivalent
		"f3": quiz.SingleAnswer("b"),
	}
	raw := Accumulate(answers, fixtureQuestions())
	if raw.AmbivalentCount != 1 {
		t.Errorf("ambivalentCount = %d, want 1", raw.AmbivalentCount)
	}

	answers["f1"] = quiz.SingleAnswer("c") // negative
	raw = Accumulate(answers, fixtureQuestions())
	if raw.NegativeCount != 1 {
		t.Errorf("negativeCount = %d, want 1", raw.NegativeCount)
	}
}

func TestAccumulate_StaleOptionSkipped(t *testing.T) {
	answers := quiz.Answers{
		"f1":      quiz.SingleAnswer("zz"), // removed from bank
		"unknown": quiz.SingleAnswer("a"),  // question not in bank
	}
	raw := Accumulate(answers, fixtureQuestions())

	for _, tr := range quiz.AllTracks() {
		if raw.Tracks[tr] != 0 {
			t.Fatalf("stale answers must contribute nothing, got %s = %d", tr, raw.Tracks[tr])
		}
	}
}

func TestAccumulate_NeutralOptionContributesNothing(t *testing.T) {
	answers := quiz.Answers{"f2": quiz.MultiAnswer("c")}
	raw := Accumulate(answers, fixtureQuestions())

	if raw.Meters != NewMeterScores() {
		t.Errorf("meters changed by empty score map: %+v", raw.Meters)
	}
	if raw.AmbivalentCount != 0 || raw.NegativeCount != 0 {
		t.Errorf("neutral option counted as sentiment")
	}
}
