package quiz

import (
	"errors"

	"github.com/griciko/QuizN2/internal/quizgen"
)

// ErrNoQuestions is returned by Start when the question list is empty.
var ErrNoQuestions = errors.New("quiz needs at least one question")

// Phase is the lifecycle state of a Session.
type Phase int

const (
	PhaseNotStarted Phase = iota // No quiz loaded
	PhaseInProgress              // Answering questions
	PhaseCompleted               // All questions answered, score final
)

func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "not-started"
	}
}

// noSelection marks that no option is pending.
const noSelection = -1

// Completion is reported once, when the last answer is confirmed.
type Completion struct {
	Score   int
	Answers []int
}

// Session runs one quiz. It is not safe for concurrent use; the UI update
// loop owns it.
type Session struct {
	phase     Phase
	category  quizgen.Category
	questions []quizgen.Question
	index     int
	answers   []int
	selected  int
	score     int
}

// New returns a Session in PhaseNotStarted.
func New() *Session {
	return &Session{selected: noSelection}
}

// Start loads questions and moves to PhaseInProgress. An empty list leaves
// the session untouched and returns ErrNoQuestions.
func (s *Session) Start(category quizgen.Category, questions []quizgen.Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	s.phase = PhaseInProgress
	s.category = category
	s.questions = questions
	s.index = 0
	s.answers = make([]int, 0, len(questions))
	s.selected = noSelection
	s.score = 0
	return nil
}

// SelectOption records a pending choice for the current question. It may be
// changed any number of times before confirming. Out-of-range indices and
// calls outside PhaseInProgress are ignored.
func (s *Session) SelectOption(i int) {
	if s.phase != PhaseInProgress {
		return
	}
	if i < 0 || i >= len(s.questions[s.index].Options) {
		return
	}
	s.selected = i
}

// ConfirmAndAdvance commits the pending choice. Without one it does nothing
// and returns (nil, false). Confirming the last question completes the
// quiz and returns its Completion.
func (s *Session) ConfirmAndAdvance() (*Completion, bool) {
	if s.phase != PhaseInProgress || s.selected == noSelection {
		return nil, false
	}

	s.answers = append(s.answers, s.selected)
	s.selected = noSelection

	if s.index == len(s.questions)-1 {
		s.score = Score(s.questions, s.answers)
		s.phase = PhaseCompleted
		answers := make([]int, len(s.answers))
		copy(answers, s.answers)
		return &Completion{Score: s.score, Answers: answers}, true
	}

	s.index++
	return nil, false
}

// Cancel discards everything and returns to PhaseNotStarted.
func (s *Session) Cancel() {
	*s = Session{selected: noSelection}
}

func (s *Session) Phase() Phase                  { return s.phase }
func (s *Session) Category() quizgen.Category    { return s.category }
func (s *Session) Questions() []quizgen.Question { return s.questions }
func (s *Session) Index() int                    { return s.index }
func (s *Session) Score() int                    { return s.score }
func (s *Session) Completed() bool               { return s.phase == PhaseCompleted }

// Answers returns the confirmed answers so far.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Selected returns the pending option, or -1 if none.
func (s *Session) Selected() int { return s.selected }

// Current returns the question being answered, or nil outside
// PhaseInProgress.
func (s *Session) Current() *quizgen.Question {
	if s.phase != PhaseInProgress {
		return nil
	}
	return &s.questions[s.index]
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.phase == PhaseInProgress && s.index == len(s.questions)-1
}

// Progress returns the 1-based step of the current question and the
// question count. Completed sessions report every step as reached.
func (s *Session) Progress() (step, total int) {
	total = len(s.questions)
	switch s.phase {
	case PhaseCompleted:
		return total, total
	case PhaseInProgress:
		return s.index + 1, total
	}
	return 0, total
}
