package quiz

import (
	tea "charm.land/bubbletea/v2"

	"github.com/griciko/QuizN2/internal/controller"
	qz "github.com/griciko/QuizN2/internal/quiz"
	"github.com/griciko/QuizN2/internal/quizgen"
	"github.com/griciko/QuizN2/internal/screen"
	"github.com/griciko/QuizN2/internal/ui/components"
	"github.com/griciko/QuizN2/internal/ui/layout"
)

// QuizScreen runs one quiz. It owns the quiz.Session and reports
// completion or cancellation to the controller as events.
type QuizScreen struct {
	session *qz.Session
	choice  components.MultiChoice

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*QuizScreen)(nil)

// New starts a session over questions.
func New(category quizgen.Category, questions []quizgen.Question) *QuizScreen {
	s := &QuizScreen{session: qz.New()}
	if err := s.session.Start(category, questions); err != nil {
		s.errMsg = "No questions to show."
		return s
	}
	s.resetChoice()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if c := s.session.Category(); c != "" {
		return c.DisplayName()
	}
	return "Quiz"
}

func (s *QuizScreen) resetChoice() {
	if q := s.session.Current(); q != nil {
		s.choice = components.NewMultiChoice(q.Options)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.errMsg != "" {
		return s, screen.Emit(controller.Reset{})
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.session.Cancel()
			return s, screen.Emit(controller.Reset{})
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.session.Phase() != qz.PhaseInProgress {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.confirm()
	}

	var changed bool
	s.choice, changed = s.choice.Update(kmsg)
	if changed {
		s.session.SelectOption(s.choice.Chosen)
	}
	return s, nil
}

// confirm commits the pending answer. Without one nothing happens.
func (s *QuizScreen) confirm() (screen.Screen, tea.Cmd) {
	done, completed := s.session.ConfirmAndAdvance()
	if completed {
		return s, screen.Emit(controller.CompleteQuiz{
			Score:   done.Score,
			Answers: done.Answers,
		})
	}
	s.resetChoice()
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(s.errMsg, width, height)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	action := "Next question"
	if s.session.IsLast() {
		action = "Finish quiz"
	}
	return []layout.KeyHint{
		{Key: "A-D", Description: "Choose"},
		{Key: "↑↓ Space", Description: "Pick"},
		{Key: "Enter", Description: action},
		{Key: "Esc", Description: "Exit"},
	}
}
