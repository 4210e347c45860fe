package quiz

import "github.com/griciko/QuizN2/internal/quizgen"

// Score counts answers that match the correct option. Answers beyond the
// question list are ignored.
func Score(questions []quizgen.Question, answers []int) int {
	score := 0
	for i, a := range answers {
		if i < len(questions) && questions[i].IsCorrect(a) {
			score++
		}
	}
	return score
}

// Performance pairs each answered question with its correctness, in order.
func Performance(questions []quizgen.Question, answers []int) []quizgen.PerformanceItem {
	n := min(len(questions), len(answers))
	out := make([]quizgen.PerformanceItem, n)
	for i := 0; i < n; i++ {
		out[i] = quizgen.PerformanceItem{
			QuestionText: questions[i].Text,
			WasCorrect:   questions[i].IsCorrect(answers[i]),
		}
	}
	return out
}
