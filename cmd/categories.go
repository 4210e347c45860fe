package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/griciko/QuizN2/internal/quizgen"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List quiz categories",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, c := range quizgen.AllCategories {
			fmt.Fprintf(out, "%-9s %-18s %s\n", c, c.DisplayName(), c.Description())
		}
	},
}
