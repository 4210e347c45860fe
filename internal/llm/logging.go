package llm

import (
	"context"
	"time"

	"github.com/griciko/QuizN2/internal/logger"
)

// LoggingProvider is a decorator that writes one log line per LLM request.
type LoggingProvider struct {
	inner Provider
	log   *logger.Logger
}

// WithLogging wraps a Provider with request logging. A nil logger
// discards output.
func WithLogging(p Provider, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, log: log.With("component", "llm")}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	kv := []interface{}{
		"purpose", PurposeFrom(ctx),
		"model", l.inner.ModelID(),
		"latency_ms", time.Since(start).Milliseconds(),
	}
	if sid := SessionFrom(ctx); sid != "" {
		kv = append(kv, "quiz_session", sid)
	}
	if req.Schema != nil {
		kv = append(kv, "schema", req.Schema.Name)
	}

	if resp != nil {
		kv = append(kv,
			"served_by", resp.Model,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens,
			"stop_reason", resp.StopReason,
		)
		if c := LookupCost(resp.Model); c != nil {
			kv = append(kv, "cost_usd", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens))
		}
	}

	if err != nil {
		kv = append(kv, "error", err.Error())
		if IsMalformed(err) {
			l.log.Warn("llm response unusable", kv...)
		} else {
			l.log.Error("llm request failed", kv...)
		}
		return resp, err
	}

	l.log.Info("llm request", kv...)
	l.log.Debug("llm response body", "purpose", PurposeFrom(ctx), "content", string(resp.Content))
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
