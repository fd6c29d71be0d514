package quiz

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Answer is a recorded response to one question: a single option id for
// single-choice questions, or a set of option ids for multi-choice ones.
// It marshals to a bare JSON string or a string array, matching the
// exported report format.
type Answer struct {
	single string
	multi  []string
}

// SingleAnswer records a single-choice selection.
func SingleAnswer(optionID string) Answer {
	return Answer{single: optionID}
}

// MultiAnswer records a multi-choice selection set.
func MultiAnswer(optionIDs ...string) Answer {
	return Answer{multi: slices.Clone(optionIDs)}
}

// IsMulti reports whether the answer holds a selection set.
func (a Answer) IsMulti() bool {
	return a.multi != nil
}

// Single returns the selected option id for a single-choice answer,
// or "" for multi answers.
func (a Answer) Single() string {
	return a.single
}

// OptionIDs returns all selected option ids, regardless of answer kind.
func (a Answer) OptionIDs() []string {
	if a.multi != nil {
		return slices.Clone(a.multi)
	}
	if a.single == "" {
		return nil
	}
	return []string{a.single}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi != nil {
		return json.Marshal(a.multi)
	}
	return json.Marshal(a.single)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Answer{single: s}
		return nil
	}
	var m []string
	if err := json.Unmarshal(data, &m); err == nil {
		*a = Answer{multi: m}
		return nil
	}
	return fmt.Errorf("answer must be a string or a string array, got %s", data)
}

// Answers maps question id to the recorded answer. Unanswered questions
// are simply absent.
type Answers map[string]Answer

// SingleIs reports whether the question was answered single-choice with
// exactly the given option id. Used by the recommendation rules that key
// off designated gating questions.
func (a Answers) SingleIs(questionID, optionID string) bool {
	ans, ok := a[questionID]
	return ok && !ans.IsMulti() && ans.Single() == optionID
}
