package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griciko/QuizN2/internal/llm"
)

func rawQuestion(id, text string, options []string, correct int, explanation string) map[string]any {
	return map[string]any{
		"id":            id,
		"question":      text,
		"options":       options,
		"correctAnswer": correct,
		"explanation":   explanation,
	}
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

var fourOpts = []string{"A", "B", "C", "D"}

func TestGenerateQuestions_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, []any{
		rawQuestion("q1", "What does 404 mean?", []string{"OK", "Not Found", "Moved", "Error"}, 1, "The server cannot find the resource."),
		rawQuestion("q2", "What does 500 mean?", []string{"OK", "Not Found", "Server Error", "Gone"}, 2, "Generic server failure."),
	})})
	client := New(mock, DefaultConfig(), nil)

	qs, err := client.GenerateQuestions(context.Background(), CategoryHTTP)
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "q1", qs[0].ID)
	assert.Equal(t, CategoryHTTP, qs[0].Category)
	assert.Equal(t, "Not Found", qs[0].CorrectOption())
	assert.Equal(t, 2, qs[1].CorrectAnswer)

	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.Equal(t, QuestionsSchema, call.Schema)
	assert.Contains(t, call.Messages[0].Content, "Generate 10 multiple-choice questions")
	assert.Contains(t, call.Messages[0].Content, "HTTP Status Codes")
	assert.Contains(t, call.Messages[0].Content, "mix of difficulty levels")
}

func TestGenerateQuestions_MalformedReturnsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{oops`},
		{"object instead of array", `{"id":"q1"}`},
		{"missing required field", `[{"id":"q1","question":"x","options":["a"],"correctAnswer":0}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			client := New(mock, DefaultConfig(), nil)

			qs, err := client.GenerateQuestions(context.Background(), CategoryOS)
			require.NoError(t, err)
			assert.NotNil(t, qs)
			assert.Empty(t, qs)
		})
	}
}

func TestGenerateQuestions_RequestFailure(t *testing.T) {
	cause := &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: cause})
	client := New(mock, DefaultConfig(), nil)

	qs, err := client.GenerateQuestions(context.Background(), CategoryNetwork)
	require.Error(t, err)
	assert.Nil(t, qs)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, CategoryNetwork, genErr.Category)

	var unavail *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavail)
}

func TestGenerateQuestions_DropsInvalidItems(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, []any{
		rawQuestion("ok", "Valid?", fourOpts, 0, "Yes."),
		rawQuestion("three", "Three options?", []string{"A", "B", "C"}, 0, "No."),
		rawQuestion("blank", "Blank option?", []string{"A", " ", "C", "D"}, 0, "No."),
		rawQuestion("range", "Out of range?", fourOpts, 4, "No."),
		rawQuestion("neg", "Negative?", fourOpts, -1, "No."),
		rawQuestion("notext", "   ", fourOpts, 0, "No."),
		rawQuestion("noexpl", "No explanation?", fourOpts, 0, ""),
	})})
	client := New(mock, DefaultConfig(), nil)

	qs, err := client.GenerateQuestions(context.Background(), CategorySecurity)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "ok", qs[0].ID)
}

func TestGenerateQuestions_FixesIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, []any{
		rawQuestion("dup", "First?", fourOpts, 0, "x"),
		rawQuestion("dup", "Second?", fourOpts, 1, "x"),
		rawQuestion("", "Third?", fourOpts, 2, "x"),
	})})
	client := New(mock, DefaultConfig(), nil)

	qs, err := client.GenerateQuestions(context.Background(), CategoryHTTP)
	require.NoError(t, err)
	require.Len(t, qs, 3)

	assert.Equal(t, "dup", qs[0].ID)
	ids := map[string]bool{}
	for _, q := range qs {
		assert.NotEmpty(t, q.ID)
		assert.False(t, ids[q.ID], "duplicate id %q", q.ID)
		ids[q.ID] = true
	}
}

func TestGenerateQuestions_CapsAtQuestionCount(t *testing.T) {
	items := make([]any, 5)
	for i := range items {
		items[i] = rawQuestion("", "Q?", fourOpts, 0, "x")
	}
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, items)})

	cfg := DefaultConfig()
	cfg.QuestionCount = 3
	client := New(mock, cfg, nil)

	qs, err := client.GenerateQuestions(context.Background(), CategoryOS)
	require.NoError(t, err)
	assert.Len(t, qs, 3)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Generate 3 multiple-choice")
}

func TestGenerateFeedback_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, map[string]any{
		"score":           2,
		"total":           3,
		"summary":         "  Good grasp of routing.  ",
		"recommendations": []string{"Study subnetting", "", "Review BGP", "Practice CIDR"},
	})})
	client := New(mock, DefaultConfig(), nil)

	results := []PerformanceItem{
		{QuestionText: "What is TCP?", WasCorrect: true},
		{QuestionText: "What is BGP?", WasCorrect: false},
		{QuestionText: "What is ARP?", WasCorrect: true},
	}
	fb, err := client.GenerateFeedback(context.Background(), CategoryNetwork, 2, 3, results)
	require.NoError(t, err)

	assert.Equal(t, &Feedback{
		Score:           2,
		Total:           3,
		Summary:         "Good grasp of routing.",
		Recommendations: []string{"Study subnetting", "Review BGP", "Practice CIDR"},
	}, fb)

	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Analyze my quiz performance in Networking.")
	assert.Contains(t, msg, "I scored 2/3.")
	assert.Contains(t, msg, `{"question":"What is BGP?","correct":false}`)
	assert.Contains(t, msg, "3 specific study recommendations")
	assert.Equal(t, FeedbackSchema, mock.Calls[0].Schema)
}

func TestGenerateFeedback_LocalScoreWins(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: mustJSON(t, map[string]any{
		"score": 9, "total": 10, "summary": "Great.", "recommendations": []string{},
	})})
	client := New(mock, DefaultConfig(), nil)

	fb, err := client.GenerateFeedback(context.Background(), CategoryOS, 3, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, fb.Score)
	assert.Equal(t, 10, fb.Total)
}

func TestGenerateFeedback_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"request failed", llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("quota")}}},
		{"malformed", llm.MockResponse{Content: json.RawMessage(`{"summary":`)}},
		{"schema mismatch", llm.MockResponse{Content: json.RawMessage(`{"summary":"x"}`)}},
		{"empty summary", llm.MockResponse{Content: json.RawMessage(`{"score":1,"total":1,"summary":" ","recommendations":[]}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New(llm.NewMockProvider(tt.resp), DefaultConfig(), nil)

			fb, err := client.GenerateFeedback(context.Background(), CategoryHTTP, 1, 1, nil)
			assert.Nil(t, fb)
			var fbErr *FeedbackError
			assert.ErrorAs(t, err, &fbErr)
		})
	}
}

func TestDemoProvider(t *testing.T) {
	client := New(NewDemoProvider(), DefaultConfig(), nil)

	for _, c := range AllCategories {
		qs, err := client.GenerateQuestions(context.Background(), c)
		require.NoError(t, err, c)
		require.NotEmpty(t, qs, c)
		for _, q := range qs {
			assert.Equal(t, c, q.Category)
		}
	}

	fb, err := client.GenerateFeedback(context.Background(), CategoryOS, 2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, fb.Score)
	assert.Len(t, fb.Recommendations, 3)
	assert.True(t, strings.HasPrefix(fb.Summary, "Offline demo"))
}
