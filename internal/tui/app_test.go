package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MohsenF3/terminal-contact-form/internal/form"
)

// pressKey sends a single named key to the model.
func pressKey(t *testing.T, m Model, k string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// typeText sends text rune by rune, as a terminal would.
func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

// click sends a mouse press on the form surface.
func click(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return updated.(Model)
}

func TestInitialState(t *testing.T) {
	m := NewModel()

	s := m.State()
	if s.Step != form.StepEmail {
		t.Errorf("initial step = %d, want %d", s.Step, form.StepEmail)
	}
	if m.CaretVisible() {
		t.Error("caret should be hidden at the very first step")
	}

	view := m.View()
	if !strings.Contains(view, form.FieldPrompt(form.StepEmail)) {
		t.Error("view should show the email prompt")
	}
	if strings.Contains(view, form.FieldPrompt(form.StepName)) {
		t.Error("view should not show future field prompts")
	}
}

func TestTypingUpdatesActiveField(t *testing.T) {
	m := NewModel()
	m = typeText(t, m, "a@b.com")

	s := m.State()
	if s.Email != "a@b.com" {
		t.Errorf("Email = %q, want %q", s.Email, "a@b.com")
	}
	if s.Name != "" || s.Description != "" {
		t.Errorf("typing touched inactive fields: %+v", s)
	}
}

func TestEnterAdvancesAndFiresFocusEffects(t *testing.T) {
	m := NewModel()
	m = typeText(t, m, "a@b.com")
	m = pressKey(t, m, "enter")

	s := m.State()
	if s.Step != form.StepName {
		t.Fatalf("step = %d, want %d", s.Step, form.StepName)
	}
	if s.Email != "a@b.com" {
		t.Errorf("Email lost on advance: %q", s.Email)
	}
	if !m.CaretVisible() {
		t.Error("caret should be visible after the first step change")
	}

	// The previous answer renders as a static completed line; the new
	// active prompt replaces the old one.
	view := m.View()
	if !strings.Contains(view, "a@b.com") {
		t.Error("completed email should be visible")
	}
	if !strings.Contains(view, form.FieldPrompt(form.StepName)) {
		t.Error("view should show the name prompt")
	}
	if strings.Contains(view, form.FieldPrompt(form.StepEmail)) {
		t.Error("view should no longer show the email prompt")
	}

	// Typing now lands in the name field.
	m = typeText(t, m, "Ada")
	if got := m.State().Name; got != "Ada" {
		t.Errorf("Name = %q, want %q", got, "Ada")
	}
}

func TestFullFormFlow(t *testing.T) {
	m := NewModel()
	m = typeText(t, m, "a@b.com")
	m = pressKey(t, m, "enter")
	m = typeText(t, m, "Ada")
	m = pressKey(t, m, "enter")
	m = typeText(t, m, "need help")
	m = pressKey(t, m, "enter")

	s := m.State()
	want := form.State{Step: form.StepReview, Email: "a@b.com", Name: "Ada", Description: "need help"}
	if s != want {
		t.Fatalf("state = %+v, want %+v", s, want)
	}

	view := m.View()
	for _, fragment := range []string{"a@b.com", "Ada", "need help", "Send it!", "Restart"} {
		if !strings.Contains(view, fragment) {
			t.Errorf("review view missing %q", fragment)
		}
	}

	// Send it! is preselected; enter submits.
	m = pressKey(t, m, "enter")
	s = m.State()
	if !s.Submitted {
		t.Fatal("enter on Send it! should submit")
	}
	if s.Email != "a@b.com" || s.Name != "Ada" || s.Description != "need help" {
		t.Errorf("submission changed field values: %+v", s)
	}

	view = m.View()
	if !strings.Contains(view, "Message sent") {
		t.Error("done view should show the confirmation message")
	}
	if strings.Contains(view, "Send it!") {
		t.Error("submission actions should be replaced by the confirmation")
	}
}

func TestEmptyAnswersAreAccepted(t *testing.T) {
	m := NewModel()
	// Confirm every step without typing anything.
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")

	s := m.State()
	if !s.Submitted {
		t.Fatal("empty answers should submit fine")
	}
	if s.Email != "" || s.Name != "" || s.Description != "" {
		t.Errorf("fields should be empty, got %+v", s)
	}
}

func TestReviewRestartAction(t *testing.T) {
	m := NewModel()
	m = typeText(t, m, "a@b.com")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")

	// Switch to Restart and activate it.
	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "enter")

	s := m.State()
	if s != form.New() {
		t.Errorf("restart should reset to initial state, got %+v", s)
	}
	if m.CaretVisible() {
		t.Error("caret should be hidden again after restart")
	}

	// The form is usable again from scratch.
	m = typeText(t, m, "second@try.io")
	if got := m.State().Email; got != "second@try.io" {
		t.Errorf("Email after restart = %q, want %q", got, "second@try.io")
	}
}

func TestRestartAfterSubmission(t *testing.T) {
	m := NewModel()
	m = typeText(t, m, "a@b.com")
	m = pressKey(t, m, "enter")
	m = typeText(t, m, "Ada")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter") // submit

	if !m.State().Submitted {
		t.Fatal("expected submitted state")
	}

	m = pressKey(t, m, "r")
	if m.State() != form.New() {
		t.Errorf("restart after submit should reset everything, got %+v", m.State())
	}
}

func TestClickRestoresCaret(t *testing.T) {
	m := NewModel()

	// Direct click at the very first step reveals the caret even though
	// no step change happened yet.
	m = click(t, m)
	if !m.CaretVisible() {
		t.Error("click should reveal the caret")
	}

	// Typing still lands in the email field afterwards.
	m = typeText(t, m, "x")
	if got := m.State().Email; got != "x" {
		t.Errorf("Email = %q, want %q", got, "x")
	}
}

func TestClickAfterRestartRefocuses(t *testing.T) {
	m := NewModel()
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "enter")
	m = pressKey(t, m, "tab")
	m = pressKey(t, m, "enter") // restart, caret hidden

	if m.CaretVisible() {
		t.Fatal("caret should be hidden after restart")
	}
	m = click(t, m)
	if !m.CaretVisible() {
		t.Error("click after restart should reveal the caret again")
	}
}

func TestEscQuitsDuringEntry(t *testing.T) {
	m := NewModel()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc command should be tea.Quit")
	}
	_ = updated
}

func TestWindowResizeAdjustsInputs(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	if m.Width != 100 || m.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", m.Width, m.Height)
	}
	// View still renders with the frame at the new width.
	if m.View() == "" {
		t.Error("view should render after resize")
	}
}
