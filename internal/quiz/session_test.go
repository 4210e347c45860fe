package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griciko/QuizN2/internal/quizgen"
)

func makeQuestions(correct ...int) []quizgen.Question {
	qs := make([]quizgen.Question, len(correct))
	for i, c := range correct {
		qs[i] = quizgen.Question{
			ID:            fmt.Sprintf("q%d", i),
			Category:      quizgen.CategoryNetwork,
			Text:          fmt.Sprintf("Question %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: c,
			Explanation:   "because",
		}
	}
	return qs
}

func assertPristine(t *testing.T, s *Session) {
	t.Helper()
	assert.Equal(t, PhaseNotStarted, s.Phase())
	assert.Empty(t, s.Questions())
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())
	assert.False(t, s.Completed())
	assert.Equal(t, -1, s.Selected())
}

func TestSession_NetworkScenario(t *testing.T) {
	s := New()
	require.NoError(t, s.Start(quizgen.CategoryNetwork, makeQuestions(1, 0)))

	s.SelectOption(1)
	done, ok := s.ConfirmAndAdvance()
	assert.False(t, ok)
	assert.Nil(t, done)
	assert.Equal(t, 1, s.Index())
	assert.False(t, s.Completed())

	s.SelectOption(1)
	done, ok = s.ConfirmAndAdvance()
	require.True(t, ok)
	assert.Equal(t, &Completion{Score: 1, Answers: []int{1, 1}}, done)
	assert.True(t, s.Completed())
	assert.Equal(t, 1, s.Score())
}

func TestSession_ConfirmWithoutSelectionIsNoop(t *testing.T) {
	s := New()
	require.NoError(t, s.Start(quizgen.CategoryOS, makeQuestions(0, 1, 2)))

	done, ok := s.ConfirmAndAdvance()
	assert.False(t, ok)
	assert.Nil(t, done)
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())
	assert.Equal(t, PhaseInProgress, s.Phase())
}

func TestSession_StartWithNoQuestions(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Start(quizgen.CategoryHTTP, nil), ErrNoQuestions)
	assertPristine(t, s)

	// A running quiz is not disturbed either.
	require.NoError(t, s.Start(quizgen.CategoryHTTP, makeQuestions(0)))
	assert.ErrorIs(t, s.Start(quizgen.CategoryHTTP, []quizgen.Question{}), ErrNoQuestions)
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Len(t, s.Questions(), 1)
}

func TestSession_SelectionOverwriteAndBounds(t *testing.T) {
	s := New()
	s.SelectOption(0) // not started: ignored
	assert.Equal(t, -1, s.Selected())

	require.NoError(t, s.Start(quizgen.CategorySecurity, makeQuestions(2)))
	s.SelectOption(0)
	s.SelectOption(2)
	s.SelectOption(4)  // out of range: ignored
	s.SelectOption(-1) // out of range: ignored
	assert.Equal(t, 2, s.Selected())

	done, ok := s.ConfirmAndAdvance()
	require.True(t, ok)
	assert.Equal(t, 1, done.Score)

	s.SelectOption(1) // completed: ignored
	assert.Equal(t, -1, s.Selected())
	_, ok = s.ConfirmAndAdvance()
	assert.False(t, ok)
}

func TestSession_CancelFromAnyPhase(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Session)
	}{
		{"not started", func(s *Session) {}},
		{"in progress", func(s *Session) {
			_ = s.Start(quizgen.CategoryHTTP, makeQuestions(0, 1))
			s.SelectOption(0)
			s.ConfirmAndAdvance()
			s.SelectOption(3)
		}},
		{"completed", func(s *Session) {
			_ = s.Start(quizgen.CategoryHTTP, makeQuestions(0))
			s.SelectOption(0)
			s.ConfirmAndAdvance()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.setup(s)
			s.Cancel()
			assertPristine(t, s)
			s.Cancel()
			assertPristine(t, s)
		})
	}
}

func TestSession_RestartAfterCompletion(t *testing.T) {
	s := New()
	require.NoError(t, s.Start(quizgen.CategoryHTTP, makeQuestions(0)))
	s.SelectOption(1)
	s.ConfirmAndAdvance()
	require.True(t, s.Completed())

	require.NoError(t, s.Start(quizgen.CategoryOS, makeQuestions(3, 3)))
	assert.Equal(t, PhaseInProgress, s.Phase())
	assert.Equal(t, quizgen.CategoryOS, s.Category())
	assert.Equal(t, 0, s.Index())
	assert.Empty(t, s.Answers())
	assert.Equal(t, 0, s.Score())
}

func TestSession_ProgressAndCurrent(t *testing.T) {
	s := New()
	assert.Nil(t, s.Current())
	step, total := s.Progress()
	assert.Zero(t, step)
	assert.Zero(t, total)
	assert.False(t, s.IsLast())

	require.NoError(t, s.Start(quizgen.CategoryNetwork, makeQuestions(0, 0, 0, 0)))
	assert.Equal(t, "q0", s.Current().ID)
	step, total = s.Progress()
	assert.Equal(t, 1, step)
	assert.Equal(t, 4, total)

	for i := 0; i < 3; i++ {
		s.SelectOption(0)
		s.ConfirmAndAdvance()
	}
	assert.True(t, s.IsLast())
	step, _ = s.Progress()
	assert.Equal(t, 4, step)

	s.SelectOption(0)
	s.ConfirmAndAdvance()
	assert.Nil(t, s.Current())
	step, total = s.Progress()
	assert.Equal(t, 4, step)
	assert.Equal(t, 4, total)
}

func TestScore(t *testing.T) {
	qs := makeQuestions(0, 1, 2, 3)
	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"none", nil, 0},
		{"all right", []int{0, 1, 2, 3}, 4},
		{"all wrong", []int{1, 2, 3, 0}, 0},
		{"partial", []int{0, 0, 2, 0}, 2},
		{"extra answers ignored", []int{0, 1, 2, 3, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(qs, tt.answers))
		})
	}
}

func TestScoreMatchesCompletion(t *testing.T) {
	patterns := [][]int{{0, 0, 0}, {1, 2, 3}, {3, 1, 0}, {2, 2, 2}}
	qs := makeQuestions(3, 1, 2)

	for _, answers := range patterns {
		s := New()
		require.NoError(t, s.Start(quizgen.CategoryOS, qs))
		var done *Completion
		for _, a := range answers {
			s.SelectOption(a)
			done, _ = s.ConfirmAndAdvance()
		}
		require.NotNil(t, done)

		want := 0
		for i, a := range answers {
			if a == qs[i].CorrectAnswer {
				want++
			}
		}
		assert.Equal(t, want, done.Score, "answers %v", answers)
		assert.Equal(t, answers, done.Answers)
	}
}

func TestPerformance(t *testing.T) {
	qs := makeQuestions(1, 0)
	got := Performance(qs, []int{1, 1})
	assert.Equal(t, []quizgen.PerformanceItem{
		{QuestionText: "Question 0", WasCorrect: true},
		{QuestionText: "Question 1", WasCorrect: false},
	}, got)

	assert.Len(t, Performance(qs, []int{1}), 1)
	assert.Empty(t, Performance(nil, nil))
}
