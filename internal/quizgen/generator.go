package quizgen

import "context"

// Client talks to the generative-AI service on behalf of the quiz.
type Client interface {
	// GenerateQuestions asks for a question set on category. A response
	// that cannot be parsed yields an empty slice and a nil error; a failed
	// request yields a *GenerationError.
	GenerateQuestions(ctx context.Context, category Category) ([]Question, error)

	// GenerateFeedback asks for an analysis of a finished quiz. Any failure
	// is returned as a *FeedbackError.
	GenerateFeedback(ctx context.Context, category Category, score, total int, results []PerformanceItem) (*Feedback, error)
}
