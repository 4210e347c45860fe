package quizgen

// Config controls the behavior of the LLMClient.
type Config struct {
	// Validators run in order on every generated question; the first
	// failure drops the question.
	Validators []Validator

	// QuestionCount is how many questions to ask for. Extra items in the
	// response are discarded.
	QuestionCount int

	// Recommendations is how many study recommendations to ask for.
	Recommendations int

	// QuestionsMaxTokens and FeedbackMaxTokens are the response budgets.
	QuestionsMaxTokens int
	FeedbackMaxTokens  int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
			&AnswerRangeValidator{},
		},
		QuestionCount:      10,
		Recommendations:    3,
		QuestionsMaxTokens: 8192,
		FeedbackMaxTokens:  2048,
		Temperature:        0.7,
	}
}
