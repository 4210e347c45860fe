package cmd

import (
	"github.com/spf13/cobra"

	"github.com/griciko/QuizN2/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quiznexus",
	Short: "AI-generated technical quizzes in the terminal",
	Long: `QuizNexus asks a generative-AI service for a multiple-choice quiz on a
technical topic (HTTP, networking, operating systems, security), scores your
answers and returns a short AI analysis of how you did.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to YAML config file (overrides QUIZNEXUS_CONFIG)")
	pf.String("log-file", "", "Log file path (overrides QUIZNEXUS_LOG_FILE)")
	pf.String("provider", "", "LLM provider: gemini, openai, openrouter, anthropic or mock")
	pf.String("model", "", "Model name or alias for the selected provider")
	pf.Int("questions", 0, "Questions per quiz")
	pf.Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration from the persistent flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	var o config.Overrides
	o.Provider, _ = cmd.Flags().GetString("provider")
	o.Model, _ = cmd.Flags().GetString("model")
	o.Questions, _ = cmd.Flags().GetInt("questions")
	o.LogFile, _ = cmd.Flags().GetString("log-file")
	o.Debug, _ = cmd.Flags().GetBool("debug")
	return config.Load(path, o)
}
