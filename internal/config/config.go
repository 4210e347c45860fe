package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/griciko/QuizN2/internal/llm"
)

// Config is the resolved application configuration.
type Config struct {
	LLM llm.Config

	// QuestionCount is how many questions a quiz asks for.
	QuestionCount int

	// Temperature is passed to every generation request.
	Temperature float64

	// LogFile is where logs go. Empty means logger.DefaultLogPath.
	LogFile string

	// Debug enables debug-level logging.
	Debug bool
}

// File mirrors the YAML config file. Every field is optional.
type File struct {
	Provider    string        `yaml:"provider"`
	Model       string        `yaml:"model"`
	Questions   int           `yaml:"questions"`
	Temperature *float64      `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
	LogFile     string        `yaml:"log_file"`
	Debug       bool          `yaml:"debug"`

	OpenAIBaseURL     string `yaml:"openai_base_url"`
	OpenRouterBaseURL string `yaml:"openrouter_base_url"`
}

// Overrides carries command-line flags. Zero values are ignored.
type Overrides struct {
	Provider  string
	Model     string
	Questions int
	LogFile   string
	Debug     bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LLM:           llm.DefaultConfig(),
		QuestionCount: 10,
		Temperature:   0.7,
	}
}

// Load resolves configuration with precedence defaults < YAML file <
// environment < flags. path may be empty, in which case $QUIZNEXUS_CONFIG
// and then DefaultPath are consulted; a missing file is only an error when
// it was asked for.
// A .env file in the working directory is loaded into the environment
// first; only its absence is tolerated.
//
// A model named by the file or --model follows the provider that is finally
// chosen, including one picked by key discovery.
func Load(path string, flags Overrides) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	providerSet := false
	model := ""

	explicit := path != ""
	if !explicit {
		path = os.Getenv("QUIZNEXUS_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		f, err := ReadFile(path)
		switch {
		case err == nil:
			cfg.applyFile(f)
			providerSet = f.Provider != ""
			model = f.Model
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return Config{}, err
		}
	}

	cfg.applyEnv()
	if os.Getenv("QUIZNEXUS_LLM_PROVIDER") != "" {
		providerSet = true
	}
	if err := cfg.applyFlags(flags); err != nil {
		return Config{}, err
	}
	if flags.Provider != "" {
		providerSet = true
	}
	if flags.Model != "" {
		model = flags.Model
	}

	cfg.LLM.ApplyStandardKeys()
	if !cfg.LLM.HasKey() && !providerSet {
		if found, ok := llm.DiscoverConfig(cfg.LLM); ok {
			cfg.LLM = found
			cfg.LLM.SetModel(model)
		}
	}

	return cfg, nil
}

// DefaultPath is $XDG_CONFIG_HOME/quiznexus/config.yaml, falling back to
// ~/.config. Returns "" if no home directory can be found.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "quiznexus", "config.yaml")
}

// ReadFile decodes a YAML config file.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	file := &File{}
	if err := yaml.NewDecoder(f).Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

func (c *Config) applyFile(f *File) {
	if f.Provider != "" {
		c.LLM.Provider = f.Provider
	}
	c.LLM.SetModel(f.Model)
	if f.Questions > 0 {
		c.QuestionCount = f.Questions
	}
	if f.Temperature != nil {
		c.Temperature = *f.Temperature
	}
	if f.Timeout > 0 {
		c.LLM.Timeout = f.Timeout
	}
	if f.LogFile != "" {
		c.LogFile = f.LogFile
	}
	if f.Debug {
		c.Debug = true
	}
	if f.OpenAIBaseURL != "" {
		c.LLM.OpenAI.BaseURL = f.OpenAIBaseURL
	}
	if f.OpenRouterBaseURL != "" {
		c.LLM.OpenRouter.BaseURL = f.OpenRouterBaseURL
	}
}

func (c *Config) applyEnv() {
	c.LLM.ApplyEnv()

	if s := os.Getenv("QUIZNEXUS_QUESTIONS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			c.QuestionCount = n
		}
	}
	if s := os.Getenv("QUIZNEXUS_TEMPERATURE"); s != "" {
		if t, err := strconv.ParseFloat(s, 64); err == nil {
			c.Temperature = t
		}
	}
	if s := os.Getenv("QUIZNEXUS_DEBUG"); s == "true" || s == "1" {
		c.Debug = true
	}
	// QUIZNEXUS_LOG_FILE is resolved by logger.DefaultLogPath.
}

func (c *Config) applyFlags(o Overrides) error {
	if o.Provider != "" {
		c.LLM.Provider = o.Provider
	}
	c.LLM.SetModel(o.Model)
	if o.Questions < 0 {
		return fmt.Errorf("--questions must be positive, got %d", o.Questions)
	}
	if o.Questions > 0 {
		c.QuestionCount = o.Questions
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.Debug {
		c.Debug = true
	}
	return nil
}

// Validate checks the resolved configuration.
func (c Config) Validate() error {
	if c.QuestionCount < 1 || c.QuestionCount > 50 {
		return fmt.Errorf("question count must be between 1 and 50, got %d", c.QuestionCount)
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return fmt.Errorf("temperature must be between 0 and 1, got %g", c.Temperature)
	}
	return c.LLM.Validate()
}
