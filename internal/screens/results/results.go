package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/griciko/QuizN2/internal/controller"
	"github.com/griciko/QuizN2/internal/router"
	"github.com/griciko/QuizN2/internal/screen"
	"github.com/griciko/QuizN2/internal/screens/review"
	"github.com/griciko/QuizN2/internal/ui/components"
	"github.com/griciko/QuizN2/internal/ui/layout"
	"github.com/griciko/QuizN2/internal/ui/theme"
)

// ResultsScreen shows the score of a finished quiz and, once it arrives,
// the AI analysis.
type ResultsScreen struct {
	state controller.State
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for state.
func New(state controller.State) *ResultsScreen {
	return &ResultsScreen{state: state}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to Dashboard"},
		{Key: "R", Description: "Review answers"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateMsg:
		s.state = msg.State
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "b":
			return s, screen.Emit(controller.Reset{})
		case "r", "R":
			if s.state.Results == nil {
				return s, nil
			}
			rv := review.New(s.state.Questions, s.state.Results.Answers)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: rv} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	res := s.state.Results
	if res == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	total := len(s.state.Questions)

	var sections []string

	score := lipgloss.NewStyle().
		Foreground(scoreColor(res.Score, total)).
		Bold(true).
		Render(fmt.Sprintf("%d/%d", res.Score, total))
	sections = append(sections, score)
	sections = append(sections, theme.Subtitle.Render("Test Completed"))
	if c := s.state.Category; c.Valid() {
		sections = append(sections, theme.Hint.Render(c.DisplayName()))
	}
	sections = append(sections, "")

	if fb := res.Feedback; fb != nil {
		var b strings.Builder
		b.WriteString(theme.Label.Render("AI Analysis"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Render(fb.Summary))
		if len(fb.Recommendations) > 0 {
			b.WriteString("\n\n")
			b.WriteString(theme.Label.Render("Key Takeaways"))
			for i, r := range fb.Recommendations {
				b.WriteString("\n")
				b.WriteString(lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).
					Render(fmt.Sprintf("%d. %s", i+1, r)))
			}
		}
		sections = append(sections, components.Card(b.String(), cw))
		sections = append(sections, "")
	} else if !s.state.Loading && res.FeedbackErr != nil {
		sections = append(sections, theme.Hint.Render("AI analysis is unavailable for this attempt."))
		sections = append(sections, "")
	}

	sections = append(sections, components.NewButton("Back to Dashboard", true).View())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func scoreColor(score, total int) color.Color {
	if total == 0 {
		return theme.Text
	}
	switch pct := float64(score) / float64(total); {
	case pct >= 0.8:
		return theme.Success
	case pct >= 0.5:
		return theme.Accent
	default:
		return theme.Error
	}
}
