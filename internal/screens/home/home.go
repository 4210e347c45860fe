package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/griciko/QuizN2/internal/controller"
	"github.com/griciko/QuizN2/internal/quizgen"
	"github.com/griciko/QuizN2/internal/screen"
	"github.com/griciko/QuizN2/internal/ui/components"
	"github.com/griciko/QuizN2/internal/ui/layout"
	"github.com/griciko/QuizN2/internal/ui/theme"
)

// HomeScreen is the dashboard: banner, topic picker and the alert banner
// left by a failed generation.
type HomeScreen struct {
	menu  components.Menu
	state controller.State
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen reflecting state.
func New(state controller.State) *HomeScreen {
	items := make([]components.MenuItem, 0, len(quizgen.AllCategories)+1)
	for _, c := range quizgen.AllCategories {
		items = append(items, components.MenuItem{
			Label:       c.DisplayName(),
			Description: c.Description(),
			Action: func() tea.Cmd {
				return screen.Emit(controller.StartQuiz{Category: c})
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Exit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h := &HomeScreen{menu: components.NewMenu(items)}
	if state.Category.Valid() {
		for i, c := range quizgen.AllCategories {
			if c == state.Category {
				h.menu.Selected = i
			}
		}
	}
	h.state = state
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Dashboard"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateMsg:
		h.state = msg.State
		return h, nil

	case tea.KeyMsg:
		// A request is in flight; the menu stays frozen until it lands.
		if h.state.Loading {
			return h, nil
		}
		if h.state.Alert != "" && (msg.String() == "esc" || msg.String() == "x") {
			return h, screen.Emit(controller.DismissAlert{})
		}
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, RenderBanner(width))
	sections = append(sections, theme.Subtitle.Render("AI-generated quizzes for engineers"))
	sections = append(sections, "")

	if h.state.Alert != "" {
		sections = append(sections, components.Alert(h.state.Alert, cw))
		sections = append(sections, "")
	}

	picker := theme.Label.Render("Choose a topic") + "\n\n" + h.menu.View()
	sections = append(sections, components.Card(strings.TrimRight(picker, "\n"), cw))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start quiz"},
	}
	if h.state.Alert != "" {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Dismiss"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}
