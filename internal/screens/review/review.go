package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/griciko/QuizN2/internal/quizgen"
	"github.com/griciko/QuizN2/internal/router"
	"github.com/griciko/QuizN2/internal/screen"
	"github.com/griciko/QuizN2/internal/ui/components"
	"github.com/griciko/QuizN2/internal/ui/layout"
	"github.com/griciko/QuizN2/internal/ui/theme"
)

// ReviewScreen walks through a finished quiz one question at a time,
// showing the user's answer next to the correct one and its explanation.
type ReviewScreen struct {
	questions []quizgen.Question
	answers   []int
	cursor    int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen. answers[i] is the option chosen for
// questions[i]; missing answers render as unanswered.
func New(questions []quizgen.Question, answers []int) *ReviewScreen {
	return &ReviewScreen{questions: questions, answers: answers}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Answer Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Previous/next"},
		{Key: "Esc", Description: "Back to results"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "left", "up", "h", "k", "p":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "down", "l", "j", "n", "space", " ":
		if s.cursor < len(s.questions)-1 {
			s.cursor++
		}
	case "home", "g":
		s.cursor = 0
	case "end", "G":
		s.cursor = max(len(s.questions)-1, 0)
	case "q", "backspace":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ReviewScreen) answer(i int) int {
	if i < len(s.answers) {
		return s.answers[i]
	}
	return -1
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.questions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Nothing to review."))
	}
	cw := components.ContentWidth(width)
	q := s.questions[s.cursor]
	chosen := s.answer(s.cursor)

	var b strings.Builder
	b.WriteString(renderStrip(s.questions, s.answers, s.cursor))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.cursor+1, len(s.questions))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Bold(true).Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(components.NewRevealedChoice(q.Options, chosen, q.CorrectAnswer).View())
	b.WriteString("\n")

	switch {
	case chosen < 0:
		b.WriteString(theme.Incorrect.Render("Not answered"))
	case q.IsCorrect(chosen):
		b.WriteString(theme.Correct.Render("Correct"))
	default:
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Your answer: %s", components.OptionLabel(chosen))))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("   "))
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct: %s", components.OptionLabel(q.CorrectAnswer))))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Label.Render("Explanation"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Render(q.Explanation))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(b.String(), cw))
}

// renderStrip renders one mark per question, the current one bracketed.
func renderStrip(questions []quizgen.Question, answers []int, cursor int) string {
	parts := make([]string, len(questions))
	for i, q := range questions {
		mark := theme.Incorrect.Render("✗")
		if i < len(answers) && q.IsCorrect(answers[i]) {
			mark = theme.Correct.Render("✓")
		}
		if i == cursor {
			mark = "[" + mark + "]"
		}
		parts[i] = mark
	}
	return strings.Join(parts, " ")
}
