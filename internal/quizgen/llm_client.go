package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/griciko/QuizN2/internal/llm"
	"github.com/griciko/QuizN2/internal/logger"
)

// LLMClient implements Client on top of an llm.Provider.
type LLMClient struct {
	provider llm.Provider
	config   Config
	log      *logger.Logger
}

// New creates an LLMClient. A nil logger discards output.
func New(provider llm.Provider, cfg Config, log *logger.Logger) *LLMClient {
	if log == nil {
		log = logger.Nop()
	}
	return &LLMClient{provider: provider, config: cfg, log: log.With("component", "quizgen")}
}

// questionOutput is one raw list item before validation.
type questionOutput struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// feedbackOutput is the raw feedback object.
type feedbackOutput struct {
	Score           int      `json:"score"`
	Total           int      `json:"total"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

func (c *LLMClient) GenerateQuestions(ctx context.Context, category Category) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestions)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionsMessage(category, c.config.QuestionCount)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   c.config.QuestionsMaxTokens,
		Temperature: c.config.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		if llm.IsMalformed(err) {
			c.log.Warn("discarding unparseable question set", "category", category, "error", err)
			return []Question{}, nil
		}
		return nil, &GenerationError{Category: category, Err: err}
	}

	var raw []questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		c.log.Warn("discarding unparseable question set", "category", category, "error", err)
		return []Question{}, nil
	}

	questions := c.normalize(category, raw)
	c.log.Info("questions generated",
		"category", category,
		"received", len(raw),
		"kept", len(questions),
	)
	return questions, nil
}

// normalize trims, validates and de-duplicates raw items. Dropped items are
// logged. The result never exceeds QuestionCount.
func (c *LLMClient) normalize(category Category, raw []questionOutput) []Question {
	out := make([]Question, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for i, r := range raw {
		if c.config.QuestionCount > 0 && len(out) == c.config.QuestionCount {
			break
		}

		q := Question{
			ID:            strings.TrimSpace(r.ID),
			Category:      category,
			Text:          strings.TrimSpace(r.Question),
			Options:       trimAll(r.Options),
			CorrectAnswer: r.CorrectAnswer,
			Explanation:   strings.TrimSpace(r.Explanation),
		}

		if verr := c.validate(&q, category); verr != nil {
			c.log.Warn("dropping generated question",
				"category", category,
				"index", i,
				"validator", verr.Validator,
				"reason", verr.Message,
			)
			continue
		}

		if q.ID == "" || seen[q.ID] {
			q.ID = uuid.NewString()
		}
		seen[q.ID] = true
		out = append(out, q)
	}
	return out
}

func (c *LLMClient) validate(q *Question, category Category) *ValidationError {
	for _, v := range c.config.Validators {
		if verr := v.Validate(q, category); verr != nil {
			return verr
		}
	}
	return nil
}

func (c *LLMClient) GenerateFeedback(ctx context.Context, category Category, score, total int, results []PerformanceItem) (*Feedback, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFeedback)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackMessage(category, score, total, results, c.config.Recommendations)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   c.config.FeedbackMaxTokens,
		Temperature: c.config.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return nil, &FeedbackError{Err: err}
	}

	var raw feedbackOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &FeedbackError{Err: fmt.Errorf("parse feedback: %w", err)}
	}

	summary := strings.TrimSpace(raw.Summary)
	if summary == "" {
		return nil, &FeedbackError{Err: errors.New("feedback summary is empty")}
	}

	// The locally computed score is authoritative.
	if raw.Score != score || raw.Total != total {
		c.log.Debug("feedback score differs from local score",
			"category", category,
			"model_score", fmt.Sprintf("%d/%d", raw.Score, raw.Total),
			"score", fmt.Sprintf("%d/%d", score, total),
		)
	}

	return &Feedback{
		Score:           score,
		Total:           total,
		Summary:         summary,
		Recommendations: nonBlank(raw.Recommendations),
	}, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func nonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
