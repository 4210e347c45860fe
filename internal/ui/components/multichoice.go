package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/griciko/QuizN2/internal/ui/theme"
)

// OptionLabel returns the letter shown next to option i (A, B, ...).
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// MultiChoice is a multiple-choice option list. The cursor and the chosen
// option are separate: moving the cursor never picks an answer, space or a
// letter key does.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int

	// Reveal switches the view to answer-review colors.
	Reveal       bool
	CorrectIndex int
}

// NewMultiChoice creates an option list with nothing chosen.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:      options,
		Chosen:       -1,
		CorrectIndex: -1,
	}
}

// NewRevealedChoice renders a finished question: chosen is the user's
// answer, correct the right one.
func NewRevealedChoice(options []string, chosen, correct int) MultiChoice {
	return MultiChoice{
		Options:      options,
		Cursor:       -1,
		Chosen:       chosen,
		Reveal:       true,
		CorrectIndex: correct,
	}
}

// Update handles navigation and picking. It reports whether the chosen
// option changed.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.Reveal {
		return m, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		return m.choose(m.Cursor)
	default:
		if len(key) == 1 {
			c := key[0] | 0x20 // fold to lower case
			if c >= 'a' && c <= 'z' {
				return m.choose(int(c - 'a'))
			}
		}
	}

	return m, false
}

func (m MultiChoice) choose(i int) (MultiChoice, bool) {
	if i < 0 || i >= len(m.Options) {
		return m, false
	}
	m.Cursor = i
	changed := m.Chosen != i
	m.Chosen = i
	return m, changed
}

// View renders the options, one per line.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.Chosen {
			mark = "(•)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, OptionLabel(i), opt)

		var style lipgloss.Style
		switch {
		case m.Reveal && i == m.CorrectIndex:
			style = theme.Correct
		case m.Reveal && i == m.Chosen:
			style = theme.Incorrect
		case m.Reveal:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Chosen:
			style = theme.Selected
		case i == m.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
