package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MohsenF3/terminal-contact-form/internal/form"
	"github.com/MohsenF3/terminal-contact-form/internal/logging"
)

// Review action buttons, in display order.
const (
	choiceSend = iota
	choiceRestart
)

// entryKeyMap defines key bindings while a field step is active
type entryKeyMap struct {
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k entryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k entryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Quit},
	}
}

// reviewKeyMap defines key bindings for the review step
type reviewKeyMap struct {
	Switch  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k reviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Confirm, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k reviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Switch, k.Confirm, k.Quit},
	}
}

// doneKeyMap defines key bindings for the post-submission screen
type doneKeyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k doneKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k doneKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Quit},
	}
}

// focusSink collects the focus/visibility effects requested by the
// FocusController so the value-copied model can apply them to itself on the
// next line of Update. Shared by pointer across model copies; safe because
// Bubble Tea serializes all updates.
type focusSink struct {
	caret bool
	step  int
}

func (s *focusSink) ShowCaret() { s.caret = true }

func (s *focusSink) FocusField(step int) { s.step = step }

// Model is the Bubble Tea model for the conversational contact form. It
// owns the form state machine and translates terminal events into the four
// form operations; all rendering derives from the state.
type Model struct {
	state form.State
	focus *form.FocusController
	sink  *focusSink

	// One entry control per field step, indexed by step-1.
	inputs [form.FieldCount]textinput.Model

	caretVisible bool
	reviewChoice int

	Width  int
	Height int

	Help       help.Model
	EntryKeys  entryKeyMap
	ReviewKeys reviewKeyMap
	DoneKeys   doneKeyMap
}

// NewModel creates the form model at step 1 with all fields empty.
func NewModel() Model {
	var inputs [form.FieldCount]textinput.Model
	for step := form.StepEmail; step <= form.StepDescription; step++ {
		in := textinput.New()
		in.Placeholder = form.FieldPlaceholder(step)
		in.Prompt = ""
		in.Width = 40
		inputs[step-1] = in
	}
	// The first entry control accepts input from the start, but the caret
	// indicator stays hidden until the user interacts or the step changes.
	inputs[0].Focus()

	sink := &focusSink{}

	return Model{
		state:  form.New(),
		focus:  form.NewFocusController(sink),
		sink:   sink,
		inputs: inputs,
		Help:   help.New(),
		EntryKeys: entryKeyMap{
			Confirm: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "continue"),
			),
			Quit: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "quit"),
			),
		},
		ReviewKeys: reviewKeyMap{
			Switch: key.NewBinding(
				key.WithKeys("left", "right", "tab"),
				key.WithHelp("←/→", "choose"),
			),
			Confirm: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "confirm"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc"),
				key.WithHelp("q", "quit"),
			),
		},
		DoneKeys: doneKeyMap{
			Restart: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "new message"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "enter"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// State returns a copy of the current form state.
func (m Model) State() form.State {
	return m.state
}

// CaretVisible reports whether the caret indicator is currently shown.
func (m Model) CaretVisible() bool {
	return m.caretVisible
}

// Init starts the cursor blink for the first entry control.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all terminal events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		inputWidth := ContentWidth(msg.Width) - 12
		for i := range m.inputs {
			m.inputs[i].Width = inputWidth
		}
		return m, nil

	case tea.MouseMsg:
		// Any click on the form surface restores caret and focus,
		// independent of step changes.
		if msg.Action == tea.MouseActionPress && !m.state.Submitted {
			m.focus.Click()
			return m.applyFocusEffects()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.state.Submitted:
			return m.updateDone(msg)
		case m.state.Step == form.StepReview:
			return m.updateReview(msg)
		default:
			return m.updateEntry(msg)
		}
	}

	return m, nil
}

// updateEntry handles keyboard input while one of the three fields is
// active (steps 1-3).
func (m Model) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.state.Step

	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "enter":
		// Confirm the active field and advance. The focus reaction
		// keyed on the step value moves caret and focus to the next
		// entry control.
		logging.LogStepChange(step, step+1)
		m.state.Advance()
		m.focus.StepChanged(m.state.Step)
		if m.state.Step == form.StepReview {
			m.reviewChoice = choiceSend
		}
		return m.applyFocusEffects()
	}

	// Everything else goes to the active entry control, then the field
	// value is synced into the state machine.
	var cmd tea.Cmd
	m.inputs[step-1], cmd = m.inputs[step-1].Update(msg)
	m.state.UpdateField(step, m.inputs[step-1].Value())
	logging.LogFieldUpdate(form.FieldLabel(step), len(m.inputs[step-1].Value()))
	return m, cmd
}

// updateReview handles keyboard input at the review step.
func (m Model) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "left", "right", "tab", "shift+tab":
		if m.reviewChoice == choiceSend {
			m.reviewChoice = choiceRestart
		} else {
			m.reviewChoice = choiceSend
		}
		return m, nil

	case "enter":
		if m.reviewChoice == choiceRestart {
			return m.restart()
		}
		m.state.Submit()
		logging.LogSubmission(len(m.state.Email), len(m.state.Name), len(m.state.Description))
		return m, nil
	}

	return m, nil
}

// updateDone handles keyboard input after submission.
func (m Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m.restart()
	case "q", "esc", "enter":
		return m, tea.Quit
	}
	return m, nil
}

// restart resets the form to its initial empty state. The focus reaction
// stays suppressed at step 1, so the caret is hidden again until the user
// interacts.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.state.Restart()
	m.focus.StepChanged(m.state.Step)
	m.caretVisible = false
	m.reviewChoice = choiceSend
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
	logging.LogRestart()
	return m, textinput.Blink
}

// applyFocusEffects drains the effects requested through the focus sink:
// caret visibility first, then moving focus to the active entry control.
func (m Model) applyFocusEffects() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.sink.caret {
		m.sink.caret = false
		m.caretVisible = true
	}
	if step := m.sink.step; step != 0 {
		m.sink.step = 0
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
		if step >= form.StepEmail && step <= form.StepDescription {
			m.inputs[step-1].Focus()
			cmd = textinput.Blink
		}
	}
	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	var content string
	var helpText string

	switch {
	case m.state.Submitted:
		content = m.renderDone()
		helpText = m.Help.View(m.DoneKeys)
	case m.state.Step == form.StepReview:
		content = m.renderReview()
		helpText = m.Help.View(m.ReviewKeys)
	default:
		content = m.renderEntry()
		helpText = m.Help.View(m.EntryKeys)
	}

	return RenderFrame(content, helpText, m.Width, m.Height)
}

// renderEntry renders the conversational view for steps 1-3: completed
// fields as static lines, then the active field's prompt and entry control.
// Fields past the active step are not rendered at all.
func (m Model) renderEntry() string {
	var b strings.Builder

	b.WriteString("\n")
	for step := form.StepEmail; step <= form.StepDescription; step++ {
		if m.state.Completed(step) {
			b.WriteString("  ")
			b.WriteString(RenderCompletedField(form.FieldLabel(step), m.state.Value(step)))
			b.WriteString("\n")
		}
	}
	if m.state.Step > form.StepEmail {
		b.WriteString("\n")
	}

	step := m.state.Step
	b.WriteString("  ")
	b.WriteString(PromptStyle.Render(form.FieldPrompt(step)))
	b.WriteString("\n\n")

	caret := "  "
	if m.caretVisible {
		caret = CaretStyle.Render("❯ ")
	}
	b.WriteString("  ")
	b.WriteString(caret)
	b.WriteString(m.inputs[step-1].View())
	b.WriteString("\n\n")

	b.WriteString("  ")
	b.WriteString(HintStyle.Render("press enter to continue"))
	b.WriteString("\n")

	return b.String()
}

// renderReview renders the step-4 summary with the two actions.
func (m Model) renderReview() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(PromptStyle.Render("Here's what we've got. Ready to send?"))
	b.WriteString("\n\n")

	var summary strings.Builder
	for step := form.StepEmail; step <= form.StepDescription; step++ {
		summary.WriteString(RenderCompletedField(form.FieldLabel(step), m.state.Value(step)))
		if step < form.StepDescription {
			summary.WriteString("\n")
		}
	}
	b.WriteString(indent(SummaryBoxStyle.Render(summary.String()), 2))
	b.WriteString("\n\n")

	send := ButtonStyle.Render("Send it!")
	restart := ButtonStyle.Render("Restart")
	if m.reviewChoice == choiceSend {
		send = SelectedButtonStyle.Render("Send it!")
	} else {
		restart = SelectedButtonStyle.Render("Restart")
	}
	b.WriteString("  ")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, send, "  ", restart))
	b.WriteString("\n")

	return b.String()
}

// renderDone renders the post-submission confirmation. The review actions
// are replaced by this message until the next restart.
func (m Model) renderDone() string {
	var b strings.Builder

	name := strings.TrimSpace(m.state.Name)
	message := "✓ Message sent. We'll be in touch soon."
	if name != "" {
		message = "✓ Message sent. Thanks, " + name + "! We'll be in touch soon."
	}

	b.WriteString("\n")
	b.WriteString(indent(ConfirmationStyle.Render(message), 2))
	b.WriteString("\n")

	return b.String()
}

// indent prefixes every line of s with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
