package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/griciko/QuizN2/internal/app"
	"github.com/griciko/QuizN2/internal/config"
	"github.com/griciko/QuizN2/internal/llm"
	"github.com/griciko/QuizN2/internal/logger"
	"github.com/griciko/QuizN2/internal/quizgen"
)

// deps is everything a quiz front end needs.
type deps struct {
	cfg    config.Config
	log    *logger.Logger
	client quizgen.Client
	status string
}

// buildDeps loads config, opens the logger and creates the generation
// client. logPath overrides the configured destination when non-empty.
func buildDeps(ctx context.Context, cmd *cobra.Command, logPath string) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath == "" {
		if logPath, err = logger.DefaultLogPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	log, err := logger.New(logger.Options{Path: logPath, Debug: cfg.Debug})
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	provider, err := newProvider(ctx, cfg.LLM, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("LLM provider: %w", err)
	}
	log.Info("starting", "provider", cfg.LLM.Provider, "model", provider.ModelID(), "questions", cfg.QuestionCount)

	qcfg := quizgen.DefaultConfig()
	qcfg.QuestionCount = cfg.QuestionCount
	qcfg.Temperature = cfg.Temperature

	status := cfg.LLM.Provider
	if id := provider.ModelID(); id != "" && id != cfg.LLM.Provider {
		status += " · " + id
	}

	return &deps{
		cfg:    cfg,
		log:    log,
		client: quizgen.New(provider, qcfg, log),
		status: status,
	}, nil
}

// newProvider builds the configured provider. "mock" serves the built-in
// demo question bank so the app can be tried without an API key.
func newProvider(ctx context.Context, cfg llm.Config, log *logger.Logger) (llm.Provider, error) {
	if cfg.Provider == "mock" {
		return llm.WithLogging(quizgen.NewDemoProvider(), log), nil
	}
	return llm.NewProvider(ctx, cfg, log)
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd.Context(), cmd, "")
	if err != nil {
		return err
	}
	defer d.log.Sync()

	return app.Run(app.Options{
		Client:  d.client,
		Timeout: d.cfg.LLM.Timeout,
		Logger:  d.log,
		Status:  d.status,
	})
}
