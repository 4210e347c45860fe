package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/griciko/QuizN2/internal/quiz"
	"github.com/griciko/QuizN2/internal/quizgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Take a quiz in plain text on stdin/stdout",
	Long: `Generate a quiz for one category and answer it line by line.

Uses the same generation client and quiz state machine as the TUI, which makes
it handy for judging question quality or scripting a run.`,
	Example: "  quiznexus preview --category NETWORK --provider mock",
	RunE:    runPreview,
}

func init() {
	previewCmd.Flags().String("category", "", "Category key or name: HTTP, NETWORK, OS, SECURITY (required)")
	previewCmd.Flags().Bool("verbose", false, "Log to stderr instead of the log file")
	_ = previewCmd.MarkFlagRequired("category")
}

func runPreview(cmd *cobra.Command, args []string) error {
	catVal, _ := cmd.Flags().GetString("category")
	verbose, _ := cmd.Flags().GetBool("verbose")

	category, err := quizgen.ParseCategory(catVal)
	if err != nil {
		return err
	}

	logPath := ""
	if verbose {
		logPath = "stderr"
	}
	d, err := buildDeps(cmd.Context(), cmd, logPath)
	if err != nil {
		return err
	}
	defer d.log.Sync()

	p := &previewer{
		client:  d.client,
		timeout: d.cfg.LLM.Timeout,
		in:      bufio.NewScanner(cmd.InOrStdin()),
		out:     cmd.OutOrStdout(),
	}
	return p.run(cmd.Context(), category)
}

// previewer plays one quiz over a line-oriented stream.
type previewer struct {
	client  quizgen.Client
	timeout time.Duration
	in      *bufio.Scanner
	out     io.Writer
}

func (p *previewer) run(ctx context.Context, category quizgen.Category) error {
	fmt.Fprintf(p.out, "Category: %s\n", category.DisplayName())
	fmt.Fprintln(p.out, "Generating questions...")

	qctx, cancel := context.WithTimeout(ctx, p.timeout)
	questions, err := p.client.GenerateQuestions(qctx, category)
	cancel()
	if err != nil {
		return err
	}

	sess := quiz.New()
	if err := sess.Start(category, questions); err != nil {
		return quizgen.ErrGenerationEmpty
	}
	fmt.Fprintln(p.out)

	for !sess.Completed() {
		q := sess.Current()
		fmt.Fprintf(p.out, "── Question %d of %d ──\n", sess.Index()+1, len(questions))
		fmt.Fprintln(p.out, q.Text)
		for i, opt := range q.Options {
			fmt.Fprintf(p.out, "  %c) %s\n", 'A'+i, opt)
		}

		choice, ok := p.readChoice(len(q.Options))
		if !ok {
			fmt.Fprintln(p.out, "\n(input closed)")
			return nil
		}
		sess.SelectOption(choice)
		if q.IsCorrect(choice) {
			fmt.Fprintln(p.out, "✓ Correct!")
		} else {
			fmt.Fprintf(p.out, "✗ Wrong. Answer: %c) %s\n", 'A'+q.CorrectAnswer, q.CorrectOption())
		}
		if q.Explanation != "" {
			fmt.Fprintf(p.out, "Explanation: %s\n", q.Explanation)
		}
		fmt.Fprintln(p.out)

		done, completed := sess.ConfirmAndAdvance()
		if completed {
			return p.finish(ctx, category, questions, done)
		}
	}
	return nil
}

// readChoice prompts until a valid option letter (or number) is entered.
// It returns false when input ends.
func (p *previewer) readChoice(n int) (int, bool) {
	for {
		fmt.Fprintf(p.out, "Your answer (A-%c): ", 'A'+n-1)
		if !p.in.Scan() {
			return 0, false
		}
		if i, ok := parseChoice(p.in.Text(), n); ok {
			return i, true
		}
		fmt.Fprintln(p.out, "Please enter one of the option letters.")
	}
}

// parseChoice accepts "b", "B", "b)" or "2" for the second option.
func parseChoice(s string, n int) (int, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ")")
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	var i int
	switch {
	case c >= 'a' && c <= 'z':
		i = int(c - 'a')
	case c >= 'A' && c <= 'Z':
		i = int(c - 'A')
	case c >= '1' && c <= '9':
		i = int(c - '1')
	default:
		return 0, false
	}
	return i, i < n
}

func (p *previewer) finish(ctx context.Context, category quizgen.Category, questions []quizgen.Question, done *quiz.Completion) error {
	fmt.Fprintf(p.out, "── Test Completed: %d/%d ──\n", done.Score, len(questions))
	fmt.Fprintln(p.out, "Requesting AI analysis...")

	fctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	fb, err := p.client.GenerateFeedback(fctx, category, done.Score, len(questions), quiz.Performance(questions, done.Answers))
	if err != nil {
		var fe *quizgen.FeedbackError
		if !errors.As(err, &fe) {
			return err
		}
		fmt.Fprintln(p.out, "AI analysis unavailable.")
		return nil
	}

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, "AI Analysis")
	fmt.Fprintln(p.out, fb.Summary)
	if len(fb.Recommendations) > 0 {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Key Takeaways")
		for i, r := range fb.Recommendations {
			fmt.Fprintf(p.out, "  %d. %s\n", i+1, r)
		}
	}
	return nil
}
