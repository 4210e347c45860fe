package quizgen

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is a single multiple-choice question. Questions are built from
// untrusted model output by the client and never modified afterwards.
type Question struct {
	ID            string
	Category      Category
	Text          string
	Options       []string
	CorrectAnswer int // index into Options
	Explanation   string
}

// IsCorrect reports whether the option at index answer is the right one.
func (q Question) IsCorrect(answer int) bool {
	return answer == q.CorrectAnswer
}

// CorrectOption returns the text of the right option.
func (q Question) CorrectOption() string {
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectAnswer]
}

// Feedback is the model's assessment of a completed quiz.
type Feedback struct {
	Score           int
	Total           int
	Summary         string
	Recommendations []string
}

// PerformanceItem pairs a question with whether it was answered correctly.
// It is serialized into the feedback prompt.
type PerformanceItem struct {
	QuestionText string `json:"question"`
	WasCorrect   bool   `json:"correct"`
}
