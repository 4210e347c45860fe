package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/griciko/QuizN2/internal/controller"
	"github.com/griciko/QuizN2/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StateMsg is delivered to screens after every controller transition so
// they can render the latest alert, loading flag or feedback.
type StateMsg struct {
	State controller.State
}

// Emit wraps a controller event as a command. Screens never reduce state
// themselves; the app does.
func Emit(ev controller.Event) tea.Cmd {
	return func() tea.Msg { return ev }
}
