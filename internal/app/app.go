package app

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/griciko/QuizN2/internal/controller"
	"github.com/griciko/QuizN2/internal/llm"
	"github.com/griciko/QuizN2/internal/logger"
	"github.com/griciko/QuizN2/internal/quizgen"
	"github.com/griciko/QuizN2/internal/router"
	"github.com/griciko/QuizN2/internal/screen"
	"github.com/griciko/QuizN2/internal/screens/home"
	quizscreen "github.com/griciko/QuizN2/internal/screens/quiz"
	"github.com/griciko/QuizN2/internal/screens/results"
	"github.com/griciko/QuizN2/internal/ui/layout"
	"github.com/griciko/QuizN2/internal/ui/theme"
)

const loadingText = "Consulting the AI service..."

// Options configures the TUI.
type Options struct {
	Client quizgen.Client

	// Timeout bounds every generation request. Zero means 60s.
	Timeout time.Duration

	Logger *logger.Logger

	// Status is shown on the right of the header, typically the model.
	Status string
}

// AppModel is the root Bubble Tea model. It owns the controller state,
// executes the effects Reduce asks for and keeps the screen stack in step
// with the current view.
type AppModel struct {
	router  *router.Router
	state   controller.State
	client  quizgen.Client
	timeout time.Duration
	log     *logger.Logger
	runID   string
	status  string
	spinner spinner.Model
	width   int
	height  int
}

// newAppModel creates an AppModel on the home view.
func newAppModel(opts Options) AppModel {
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	runID := uuid.NewString()
	return AppModel{
		router:  router.New(home.New(controller.State{})),
		client:  opts.Client,
		timeout: opts.Timeout,
		log:     opts.Logger.With("run_id", runID),
		runID:   runID,
		status:  opts.Status,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case controller.Event:
		return m, m.dispatch(msg)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// dispatch applies ev, syncs the screens and starts any requested effect.
func (m *AppModel) dispatch(ev controller.Event) tea.Cmd {
	prev := m.state
	next, effect := controller.Reduce(prev, ev)
	m.state = next

	m.log.Debug("transition",
		"event", fmt.Sprintf("%T", ev),
		"view", next.View.String(),
		"loading", next.Loading,
		"token", next.Token,
	)

	var cmds []tea.Cmd
	if next.View != prev.View {
		cmds = append(cmds, m.router.Reset(screenFor(next)))
	} else {
		cmds = append(cmds, m.router.UpdateRoot(screen.StateMsg{State: next}))
	}
	if next.Loading && !prev.Loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	if effect != nil {
		cmds = append(cmds, m.run(effect))
	}
	return tea.Batch(cmds...)
}

func screenFor(s controller.State) screen.Screen {
	switch s.View {
	case controller.ViewQuiz:
		return quizscreen.New(s.Category, s.Questions)
	case controller.ViewResults:
		return results.New(s)
	default:
		return home.New(s)
	}
}

// run turns an effect into a command that performs the request and
// reports back with the matching event.
func (m *AppModel) run(effect controller.Effect) tea.Cmd {
	client, timeout, runID := m.client, m.timeout, m.runID
	log := m.log

	switch e := effect.(type) {
	case controller.FetchQuestions:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(llm.WithSession(context.Background(), runID), timeout)
			defer cancel()

			qs, err := client.GenerateQuestions(ctx, e.Category)
			switch {
			case err != nil:
				log.Error("question generation failed", "category", e.Category, "token", e.Token, "error", err)
			case len(qs) == 0:
				log.Warn("question generation returned nothing", "category", e.Category, "token", e.Token)
			default:
				log.Info("questions ready", "category", e.Category, "count", len(qs), "token", e.Token)
			}
			return controller.QuestionsLoaded{Token: e.Token, Questions: qs, Err: err}
		}

	case controller.FetchFeedback:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(llm.WithSession(context.Background(), runID), timeout)
			defer cancel()

			fb, err := client.GenerateFeedback(ctx, e.Category, e.Score, e.Total, e.Performance)
			if err != nil {
				log.Warn("feedback unavailable", "category", e.Category, "token", e.Token, "error", err)
			}
			return controller.FeedbackLoaded{Token: e.Token, Feedback: fb, Err: err}
		}
	}
	return nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.renderContent(contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// renderContent draws the active screen. While questions load the home
// screen is replaced by the spinner; while feedback loads the spinner sits
// under the results.
func (m AppModel) renderContent(height int) string {
	if !m.state.Loading {
		return m.router.View(m.width, height)
	}

	line := m.spinner.View() + " " + lipgloss.NewStyle().Foreground(theme.Text).Render(loadingText)
	if m.state.View == controller.ViewHome {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(line))
	}

	body := m.router.View(m.width, max(height-2, 0))
	return body + "\n\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

func (m AppModel) footerHints() []layout.KeyHint {
	if m.state.Loading && m.state.View == controller.ViewHome {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		if opts.Logger != nil {
			opts.Logger.Error("program exited with error", "error", err)
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
