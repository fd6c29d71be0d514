package quiz

// FilterQuestions returns the subset of questions applicable to a profile,
// preserving bank order. A question is dropped when it declares ShowFor and
// the profile's level is not listed, or when it declares ShowForStreams and
// the profile's meaningful stream is not listed. Profiles without a
// meaningful stream pass every stream filter.
//
// The filter is stable and idempotent; downstream navigation and progress
// display depend on the order being exactly the bank order.
func FilterQuestions(questions []Question, profile UserProfile) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if len(q.ShowFor) > 0 && !containsLevel(q.ShowFor, profile.EducationLevel) {
			continue
		}
		if len(q.ShowForStreams) > 0 && profile.HasStream() &&
			!containsStream(q.ShowForStreams, profile.CurrentStream) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func containsLevel(levels []EducationLevel, l EducationLevel) bool {
	for _, v := range levels {
		if v == l {
			return true
		}
	}
	return false
}

func containsStream(streams []Stream, s Stream) bool {
	for _, v := range streams {
		if v == s {
			return true
		}
	}
	return false
}
