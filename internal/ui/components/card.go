package components

import (
	"charm.land/lipgloss/v2"

	"github.com/griciko/QuizN2/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for card sections so
// stacked boxes align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(content)
}

// Alert renders an error banner at the given content width.
func Alert(msg string, cw int) string {
	return theme.AlertBox.Width(cw - 2).Render(msg)
}
