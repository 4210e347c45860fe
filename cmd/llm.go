package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/griciko/QuizN2/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the generative-AI provider configuration",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved provider, model and credential state",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		c := cfg.LLM

		key := "missing"
		if c.HasKey() {
			key = "configured"
		}

		fmt.Fprintf(out, "Provider:  %s\n", c.Provider)
		fmt.Fprintf(out, "Model:     %s\n", c.ActiveModel())
		fmt.Fprintf(out, "API key:   %s\n", key)
		fmt.Fprintf(out, "Timeout:   %s\n", c.Timeout)
		fmt.Fprintf(out, "Questions: %d\n", cfg.QuestionCount)
		if mc := llm.LookupCost(c.ActiveModel()); mc != nil {
			fmt.Fprintf(out, "Pricing:   $%.2f in / $%.2f out per 1M tokens\n", mc.InputPerMTok, mc.OutputPerMTok)
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(out, "\nNot ready: %v\n", err)
		}
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
}
