package quizgen

import (
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = `You are a senior engineer writing technical interview practice questions.

Rules:
- Questions must be factually correct and unambiguous.
- Every question has exactly 4 options and exactly one correct option.
- Distractors should be plausible, not obviously wrong.
- correctAnswer is the zero-based index of the correct option.
- Explanations teach the concept, not just restate the answer.`

// buildQuestionsMessage asks for count questions about category.
func buildQuestionsMessage(category Category, count int) string {
	return fmt.Sprintf(
		"Generate %d multiple-choice questions for a quiz about %s. "+
			"Each question should have %d options and a detailed explanation of the correct answer. "+
			"Ensure a mix of difficulty levels.",
		count, category.DisplayName(), OptionCount)
}

// buildFeedbackMessage embeds the score and the per-question results.
func buildFeedbackMessage(category Category, score, total int, results []PerformanceItem, recommendations int) string {
	if results == nil {
		results = []PerformanceItem{}
	}
	encoded, err := json.Marshal(results)
	if err != nil {
		encoded = []byte("[]")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze my quiz performance in %s. ", category.DisplayName())
	fmt.Fprintf(&b, "I scored %d/%d. ", score, total)
	fmt.Fprintf(&b, "Here are the results: %s. ", encoded)
	fmt.Fprintf(&b, "Provide a professional summary and %d specific study recommendations.", recommendations)
	return b.String()
}
