// Package controller holds the application's view state and the pure
// transition function over it. Side effects are described, not performed:
// Reduce returns an Effect that the runtime executes and feeds back as an
// Event.
package controller

import (
	"errors"

	"github.com/griciko/QuizN2/internal/quiz"
	"github.com/griciko/QuizN2/internal/quizgen"
)

// Alert texts shown on the home view.
const (
	AlertGenerationEmpty  = "Failed to generate questions. Please try again."
	AlertGenerationFailed = "Error contacting the AI service. Ensure the API key is valid."
)

// View is the top-level screen.
type View int

const (
	ViewHome View = iota
	ViewQuiz
	ViewResults
)

func (v View) String() string {
	switch v {
	case ViewQuiz:
		return "quiz"
	case ViewResults:
		return "results"
	default:
		return "home"
	}
}

// Results is what the results view shows. Feedback stays nil while it is
// loading and after it fails.
type Results struct {
	Score       int
	Answers     []int
	Feedback    *quizgen.Feedback
	FeedbackErr error
}

// State is the whole view state. The zero value is the home view.
type State struct {
	View      View
	Loading   bool
	Category  quizgen.Category
	Questions []quizgen.Question
	Results   *Results
	Alert     string

	// Token identifies the current request generation. Responses carrying
	// an older token are dropped.
	Token uint64
}

// Event is an input to Reduce.
type Event interface{ isEvent() }

type (
	// StartQuiz asks for a new question set.
	StartQuiz struct{ Category quizgen.Category }

	// QuestionsLoaded delivers the result of FetchQuestions.
	QuestionsLoaded struct {
		Token     uint64
		Questions []quizgen.Question
		Err       error
	}

	// CompleteQuiz reports that the last answer was confirmed.
	CompleteQuiz struct {
		Score   int
		Answers []int
	}

	// FeedbackLoaded delivers the result of FetchFeedback.
	FeedbackLoaded struct {
		Token    uint64
		Feedback *quizgen.Feedback
		Err      error
	}

	// Reset returns to the home view and abandons any request in flight.
	Reset struct{}

	// DismissAlert clears the alert banner.
	DismissAlert struct{}
)

func (StartQuiz) isEvent()       {}
func (QuestionsLoaded) isEvent() {}
func (CompleteQuiz) isEvent()    {}
func (FeedbackLoaded) isEvent()  {}
func (Reset) isEvent()           {}
func (DismissAlert) isEvent()    {}

// Effect is a side effect requested by Reduce. A nil Effect means none.
type Effect interface{ isEffect() }

type (
	// FetchQuestions requests a question set; answer with QuestionsLoaded.
	FetchQuestions struct {
		Token    uint64
		Category quizgen.Category
	}

	// FetchFeedback requests an analysis; answer with FeedbackLoaded.
	FetchFeedback struct {
		Token       uint64
		Category    quizgen.Category
		Score       int
		Total       int
		Performance []quizgen.PerformanceItem
	}
)

func (FetchQuestions) isEffect() {}
func (FetchFeedback) isEffect()  {}

// Reduce applies ev to s. It never blocks and never performs I/O.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case StartQuiz:
		if s.Loading || !ev.Category.Valid() {
			return s, nil
		}
		s.Token++
		s.Loading = true
		s.Category = ev.Category
		s.Alert = ""
		return s, FetchQuestions{Token: s.Token, Category: ev.Category}

	case QuestionsLoaded:
		if ev.Token != s.Token || s.View != ViewHome {
			return s, nil
		}
		s.Loading = false
		switch {
		case ev.Err != nil && !errors.Is(ev.Err, quizgen.ErrGenerationEmpty):
			s.Alert = AlertGenerationFailed
		case len(ev.Questions) == 0:
			s.Alert = AlertGenerationEmpty
		default:
			s.Questions = ev.Questions
			s.View = ViewQuiz
		}
		return s, nil

	case CompleteQuiz:
		if s.View != ViewQuiz {
			return s, nil
		}
		s.View = ViewResults
		s.Loading = true
		s.Results = &Results{Score: ev.Score, Answers: ev.Answers}
		return s, FetchFeedback{
			Token:       s.Token,
			Category:    s.Category,
			Score:       ev.Score,
			Total:       len(s.Questions),
			Performance: quiz.Performance(s.Questions, ev.Answers),
		}

	case FeedbackLoaded:
		if ev.Token != s.Token || s.View != ViewResults || s.Results == nil {
			return s, nil
		}
		s.Loading = false
		r := *s.Results
		if ev.Err != nil {
			r.Feedback = nil
			r.FeedbackErr = ev.Err
		} else {
			r.Feedback = ev.Feedback
		}
		s.Results = &r
		return s, nil

	case Reset:
		return State{Token: s.Token + 1}, nil

	case DismissAlert:
		s.Alert = ""
		return s, nil
	}
	return s, nil
}
