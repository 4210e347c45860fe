package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/griciko/QuizN2/internal/controller"
	"github.com/griciko/QuizN2/internal/quizgen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []quizgen.Question {
	return []quizgen.Question{
		{ID: "q1", Category: quizgen.CategoryNetwork, Text: "Which layer does IP live on?",
			Options: []string{"Link", "Network", "Transport", "Session"}, CorrectAnswer: 1},
		{ID: "q2", Category: quizgen.CategoryNetwork, Text: "Default HTTPS port?",
			Options: []string{"443", "80", "22", "8080"}, CorrectAnswer: 0},
	}
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(quizgen.CategoryNetwork, testQuestions())
	if s.Title() != "Networking" {
		t.Errorf("got %q", s.Title())
	}
}

func TestQuizScreen_View(t *testing.T) {
	s := New(quizgen.CategoryNetwork, testQuestions())
	view := s.View(100, 40)
	for _, want := range []string{"Question 1 of 2", "Which layer does IP live on?", "A)  Link", "D)  Session", "Next Question"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuizScreen_EnterWithoutSelectionIsNoop(t *testing.T) {
	s := New(quizgen.CategoryNetwork, testQuestions())
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command")
	}
	if s.session.Index() != 0 {
		t.Errorf("index = %d, want 0", s.session.Index())
	}
}

func TestQuizScreen_FullRun(t *testing.T) {
	s := New(quizgen.CategoryNetwork, testQuestions())

	s.Update(keyPress('a'))
	s.Update(keyPress('b')) // change of mind before confirming
	if s.session.Selected() != 1 {
		t.Fatalf("selected = %d, want 1", s.session.Selected())
	}
	if _, cmd := s.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Fatal("first confirm should not complete")
	}
	if !strings.Contains(s.View(100, 40), "Finish Quiz") {
		t.Error("last question should offer Finish Quiz")
	}

	s.Update(keyPress('b'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected completion")
	}
	ev, ok := cmd().(controller.CompleteQuiz)
	if !ok {
		t.Fatalf("expected CompleteQuiz, got %T", cmd())
	}
	if ev.Score != 1 {
		t.Errorf("score = %d, want 1", ev.Score)
	}
	if len(ev.Answers) != 2 || ev.Answers[0] != 1 || ev.Answers[1] != 1 {
		t.Errorf("answers = %v", ev.Answers)
	}

	if _, cmd := s.Update(keyPress('a')); cmd != nil {
		t.Error("completed quiz must ignore keys")
	}
}

func TestQuizScreen_ArrowAndSpace(t *testing.T) {
	s := New(quizgen.CategoryNetwork, testQuestions())
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if s.session.Selected() != -1 {
		t.Fatal("moving the cursor must not select")
	}
	s.Update(specialKey(tea.KeySpace))
	if s.session.Selected() != 2 {
		t.Errorf("selected = %d, want 2", s.session.Selected())
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s := New(quizgen.CategoryNetwork, testQuestions())

	s.Update(specialKey(tea.KeyEscape))
	if !s.showingQuitConfirm {
		t.Fatal("expected exit confirmation")
	}
	if !strings.Contains(s.View(100, 40), "Leave this quiz?") {
		t.Error("confirmation not rendered")
	}

	s.Update(keyPress('n'))
	if s.showingQuitConfirm {
		t.Fatal("expected confirmation dismissed")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected reset")
	}
	if _, ok := cmd().(controller.Reset); !ok {
		t.Errorf("expected Reset, got %T", cmd())
	}
	if s.session.Index() != 0 || len(s.session.Answers()) != 0 {
		t.Error("session should be cancelled")
	}
}

func TestQuizScreen_NoQuestions(t *testing.T) {
	s := New(quizgen.CategoryOS, nil)
	if !strings.Contains(s.View(100, 40), "No questions") {
		t.Error("expected error view")
	}
	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("any key should go back")
	}
	if _, ok := cmd().(controller.Reset); !ok {
		t.Errorf("expected Reset, got %T", cmd())
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := New(quizgen.CategoryNetwork, testQuestions()[:1])
	hints := s.KeyHints()
	found := false
	for _, h := range hints {
		if h.Key == "Enter" && h.Description == "Finish quiz" {
			found = true
		}
	}
	if !found {
		t.Errorf("single-question quiz should hint Finish quiz: %+v", hints)
	}
}
