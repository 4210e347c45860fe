package quizgen

import "github.com/griciko/QuizN2/internal/llm"

// QuestionsSchema is the response shape for a question set. Option count
// and answer range are left to the validators so one bad item does not
// discard the whole set.
var QuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A list of multiple-choice quiz questions with explanations",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "A short identifier unique within the list",
				},
				"question": map[string]any{
					"type":        "string",
					"description": "The question text",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Exactly 4 answer options",
				},
				"correctAnswer": map[string]any{
					"type":        "integer",
					"description": "Zero-based index of the correct option",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "A detailed explanation of why the correct answer is right",
				},
			},
			"required":             []any{"id", "question", "options", "correctAnswer", "explanation"},
			"additionalProperties": false,
		},
	},
}

// FeedbackSchema is the response shape for a performance analysis.
var FeedbackSchema = &llm.Schema{
	Name:        "quiz-feedback",
	Description: "A professional summary of quiz performance with study recommendations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type": "integer",
			},
			"total": map[string]any{
				"type": "integer",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "A short professional assessment of the performance",
			},
			"recommendations": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific study recommendations",
			},
		},
		"required":             []any{"score", "total", "summary", "recommendations"},
		"additionalProperties": false,
	},
}
