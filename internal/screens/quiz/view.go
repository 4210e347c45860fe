package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/griciko/QuizN2/internal/ui/components"
	"github.com/griciko/QuizN2/internal/ui/theme"
)

// renderQuestion renders the active question with its options.
func (s *QuizScreen) renderQuestion(width, height int) string {
	q := s.session.Current()
	if q == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	total := len(s.session.Questions())

	var b strings.Builder

	infoLeft := theme.Label.Render(s.session.Category().DisplayName())
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.session.Index()+1, total))
	gap := cw - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(infoLeft + strings.Repeat(" ", gap) + infoRight)
	b.WriteString("\n")
	step, _ := s.session.Progress()
	b.WriteString(components.NewQuestionTrack(step, total, cw).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(s.choice.View())
	b.WriteString("\n")

	label := "Next Question"
	if s.session.IsLast() {
		label = "Finish Quiz"
	}
	button := components.NewButton(label, s.session.Selected() >= 0).View()
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Right, button))

	content := components.Card(b.String(), cw+6)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuitConfirm renders the exit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your answers will be discarded."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Render("[Y] Yes, back to dashboard"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderError(msg string, width, height int) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Render(msg) + "\n\n" +
		theme.Hint.Render("Press any key to return")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
