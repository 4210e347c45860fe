package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/griciko/QuizN2/internal/ui/theme"
)

// QuestionTrack shows how far through a quiz the player is: one segment
// per question, lit up to the current step, followed by an "i/n" counter.
type QuestionTrack struct {
	Step  int // 1-based, clamped to [0, Total]
	Total int
	Width int
}

// NewQuestionTrack creates a track for step of total in width columns.
func NewQuestionTrack(step, total, width int) QuestionTrack {
	return QuestionTrack{Step: step, Total: total, Width: width}
}

// Counter returns the "i/n" label drawn after the segments.
func (q QuestionTrack) Counter() string {
	return fmt.Sprintf("%d/%d", q.step(), max(q.Total, 0))
}

func (q QuestionTrack) step() int {
	return min(max(q.Step, 0), max(q.Total, 0))
}

func (q QuestionTrack) View() string {
	counter := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + q.Counter())
	if q.Total <= 0 {
		return counter
	}

	avail := max(q.Width-lipgloss.Width(counter), 1)
	step := q.step()

	// Each segment is followed by a one-column gap. When the quiz has more
	// questions than fit that way the gaps are dropped and the track
	// degrades to a solid bar.
	seg := (avail+1)/q.Total - 1
	if seg < 1 {
		filled := avail * step / q.Total
		return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
			theme.ProgressEmpty.Render(strings.Repeat(" ", avail-filled)) +
			counter
	}

	var b strings.Builder
	cell := strings.Repeat(" ", seg)
	for i := 1; i <= q.Total; i++ {
		if i > 1 {
			b.WriteString(" ")
		}
		if i <= step {
			b.WriteString(theme.ProgressFilled.Render(cell))
		} else {
			b.WriteString(theme.ProgressEmpty.Render(cell))
		}
	}
	b.WriteString(counter)
	return b.String()
}
