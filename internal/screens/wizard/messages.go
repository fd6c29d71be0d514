package wizard

import (
	"github.com/abhisek/disha/internal/quiz"
	"github.com/abhisek/disha/internal/store"
)

// wizardInitMsg carries the filtered question set (or the bank load error).
type wizardInitMsg struct {
	Questions []quiz.Question
	Err       error
}

// submittedMsg carries the saved attempt after a completed quiz.
type submittedMsg struct {
	Attempt   *store.Attempt
	Delivered bool // webhook submission outcome, informational only
	Err       error
}
