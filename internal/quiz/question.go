package quiz

// Meter key names as they appear in option score maps and result JSON.
const (
	MeterRoutineTolerance = "routineTolerance"
	MeterStressTolerance  = "stressTolerance"
	MeterClarity          = "clarity"
)

// Sentiment tags an option's emotional direction. The scoring engine's
// confidence heuristic counts ambivalent and negative selections; tagging
// options explicitly keeps scoring decoupled from display wording.
type Sentiment string

const (
	SentimentPositive   Sentiment = "positive"
	SentimentAmbivalent Sentiment = "ambivalent"
	SentimentNegative   Sentiment = "negative"
)

// QuestionType distinguishes single-choice from multi-choice questions.
type QuestionType string

const (
	TypeSingle QuestionType = "single"
	TypeMulti  QuestionType = "multi"
)

// OptionScore is a sparse map of signed deltas keyed by track id or meter
// name. Options with an empty map are valid neutral choices.
type OptionScore map[string]int

// TrackDelta returns the delta this score map contributes to a track.
func (s OptionScore) TrackDelta(t Track) int {
	return s[string(t)]
}

// MeterDelta returns the delta this score map contributes to a meter key.
func (s OptionScore) MeterDelta(meter string) int {
	return s[meter]
}

// QuestionOption is one selectable answer to a question.
type QuestionOption struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	Sentiment Sentiment   `json:"sentiment,omitempty"` // empty means positive/neutral
	Score     OptionScore `json:"score"`
}

// Question is one static entry of the question bank. Never mutated.
type Question struct {
	ID             string           `json:"id"`
	Round          string           `json:"round"`
	Type           QuestionType     `json:"type"`
	Prompt         string           `json:"prompt"`
	Options        []QuestionOption `json:"options"`
	MultiSelectMax int              `json:"multiSelectMax,omitempty"`
	// ShowFor, when non-empty, limits the question to the listed levels.
	ShowFor []EducationLevel `json:"showFor,omitempty"`
	// ShowForStreams, when non-empty, limits the question to profiles whose
	// meaningful stream is in the list.
	ShowForStreams []Stream `json:"showForStreams,omitempty"`
}

// Option finds an option by id. The second return is false when the id is
// not in the question's option list (stale answer data).
func (q Question) Option(id string) (QuestionOption, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return QuestionOption{}, false
}

// MaxSelections returns the selection cap for a question, falling back to
// def for multi questions that don't declare one. Single questions cap at 1.
func (q Question) MaxSelections(def int) int {
	if q.Type != TypeMulti {
		return 1
	}
	if q.MultiSelectMax > 0 {
		return q.MultiSelectMax
	}
	return def
}
