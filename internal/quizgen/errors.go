package quizgen

import (
	"errors"
	"fmt"
)

// ErrGenerationEmpty means the service answered but produced no usable
// questions.
var ErrGenerationEmpty = errors.New("no usable questions generated")

// GenerationError wraps a failed question request (network, auth, quota).
type GenerationError struct {
	Category Category
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s questions: %v", e.Category, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// FeedbackError wraps any failure to obtain feedback. It is never fatal:
// results are shown without the analysis.
type FeedbackError struct {
	Err error
}

func (e *FeedbackError) Error() string {
	return fmt.Sprintf("generate feedback: %v", e.Err)
}

func (e *FeedbackError) Unwrap() error { return e.Err }
