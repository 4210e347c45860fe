package quizgen

import (
	"fmt"
	"strings"
)

// Validator checks a single generated question. Implementations should be
// stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in logs, e.g. "structural".
	Name() string

	// Validate returns nil if q is usable for a quiz on category.
	Validate(q *Question, category Category) *ValidationError
}

// ValidationError describes why a question was dropped.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator requires non-empty text and explanation.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ Category) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question text is empty"}
	}
	if len(q.Text) > 1000 {
		return &ValidationError{Validator: v.Name(), Message: "question text exceeds 1000 characters"}
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return &ValidationError{Validator: v.Name(), Message: "explanation is empty"}
	}
	return nil
}

// OptionsValidator requires exactly OptionCount non-blank options.
type OptionsValidator struct{}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question, _ Category) *ValidationError {
	if len(q.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)),
		}
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("option %d is blank", i),
			}
		}
	}
	return nil
}

// AnswerRangeValidator requires CorrectAnswer to index into Options.
type AnswerRangeValidator struct{}

func (v *AnswerRangeValidator) Name() string { return "answer-range" }

func (v *AnswerRangeValidator) Validate(q *Question, _ Category) *ValidationError {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correctAnswer %d out of range [0,%d)", q.CorrectAnswer, len(q.Options)),
		}
	}
	return nil
}
