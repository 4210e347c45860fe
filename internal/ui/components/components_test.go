package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

type pickedMsg string

func TestMenu_Navigation(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "HTTP", Description: "Web protocols"},
		{Label: "Disabled", Disabled: true},
		{Label: "OS", Action: func() tea.Cmd {
			return func() tea.Msg { return pickedMsg("os") }
		}},
	})

	m, _ = m.Update(specialKey(tea.KeyDown))
	if m.Selected != 2 {
		t.Fatalf("down should skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(specialKey(tea.KeyUp))
	if m.Selected != 0 {
		t.Fatalf("up should skip disabled item, got %d", m.Selected)
	}

	_, cmd := m.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("item without action should not return a command")
	}

	m, cmd = m.Update(keyPress('3'))
	if m.Selected != 2 || cmd == nil {
		t.Fatalf("digit should select and activate, selected=%d", m.Selected)
	}
	if got := cmd(); got != pickedMsg("os") {
		t.Errorf("got %v", got)
	}

	if _, cmd := m.Update(keyPress('2')); cmd != nil {
		t.Error("digit on disabled item should do nothing")
	}
}

func TestMenu_ViewShowsDescriptions(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "HTTP", Description: "Web protocols"}})
	view := m.View()
	if !strings.Contains(view, "▸ HTTP") {
		t.Errorf("selected marker missing: %q", view)
	}
	if !strings.Contains(view, "Web protocols") {
		t.Errorf("description missing: %q", view)
	}
}

func TestMultiChoice_Choose(t *testing.T) {
	m := NewMultiChoice([]string{"one", "two", "three", "four"})

	m, changed := m.Update(specialKey(tea.KeyDown))
	if changed || m.Chosen != -1 || m.Cursor != 1 {
		t.Fatalf("moving the cursor must not choose: %+v", m)
	}

	m, changed = m.Update(specialKey(tea.KeySpace))
	if !changed || m.Chosen != 1 {
		t.Fatalf("space should choose cursor, got %+v", m)
	}

	m, changed = m.Update(keyPress('d'))
	if !changed || m.Chosen != 3 || m.Cursor != 3 {
		t.Fatalf("letter should choose option, got %+v", m)
	}

	m, changed = m.Update(keyPress('d'))
	if changed {
		t.Error("re-choosing the same option is not a change")
	}

	m, changed = m.Update(keyPress('x'))
	if changed || m.Chosen != 3 {
		t.Error("out-of-range letter must be ignored")
	}
}

func TestMultiChoice_RevealIgnoresKeys(t *testing.T) {
	m := NewRevealedChoice([]string{"a", "b"}, 0, 1)
	m, changed := m.Update(keyPress('b'))
	if changed || m.Chosen != 0 {
		t.Error("revealed choice must be read-only")
	}
	view := m.View()
	if !strings.Contains(view, "A)  a") || !strings.Contains(view, "B)  b") {
		t.Errorf("labels missing: %q", view)
	}
}

func TestOptionLabel(t *testing.T) {
	for i, want := range []string{"A", "B", "C", "D"} {
		if got := OptionLabel(i); got != want {
			t.Errorf("OptionLabel(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestQuestionTrack(t *testing.T) {
	tests := []struct {
		name        string
		step, total int
		width       int
		counter     string
	}{
		{"first of ten", 1, 10, 60, "1/10"},
		{"last", 4, 4, 40, "4/4"},
		{"step past total clamps", 7, 4, 40, "4/4"},
		{"negative step clamps", -2, 4, 40, "0/4"},
		{"more questions than columns", 3, 50, 20, "3/50"},
		{"no questions", 0, 0, 40, "0/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := NewQuestionTrack(tt.step, tt.total, tt.width)
			if got := track.Counter(); got != tt.counter {
				t.Errorf("Counter() = %q, want %q", got, tt.counter)
			}
			if v := track.View(); !strings.Contains(v, tt.counter) {
				t.Errorf("view missing counter %q: %q", tt.counter, v)
			}
		})
	}
}

func TestQuestionTrack_FitsWidth(t *testing.T) {
	tests := []struct {
		step, total, width int
	}{
		{2, 5, 40},
		{10, 10, 60},
		{3, 50, 20},
	}
	for _, tt := range tests {
		v := NewQuestionTrack(tt.step, tt.total, tt.width).View()
		if w := lipgloss.Width(v); w > tt.width {
			t.Errorf("%d/%d: width = %d, want <= %d", tt.step, tt.total, w, tt.width)
		}
	}
}
