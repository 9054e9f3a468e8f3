package form

// FocusSink receives the focus/visibility side effects from the
// FocusController. The TUI implements this against its caret indicator and
// textinput controls; the controller never mutates form state itself.
type FocusSink interface {
	// ShowCaret makes the active step's caret indicator visible.
	ShowCaret()
	// FocusField moves input focus to the entry control for step.
	FocusField(step int)
}

// FocusController reacts to step changes by revealing the caret indicator
// and focusing the active field's entry control. It is keyed on the step
// value: the reaction fires exactly once per step change, re-fires on every
// subsequent change, and is suppressed while the form sits at the very
// first step (the caret stays hidden until the user interacts or the step
// changes).
type FocusController struct {
	sink FocusSink
	step int
}

// NewFocusController returns a controller observing a form at its initial
// step. No effects fire until the step moves past StepEmail.
func NewFocusController(sink FocusSink) *FocusController {
	return &FocusController{sink: sink, step: StepEmail}
}

// StepChanged notifies the controller of the form's current step. When the
// step actually changed and the new step is past the first, the two side
// effects fire in order: caret visibility first, then input focus. Repeat
// calls with an unchanged step are no-ops, so the reaction fires exactly
// once per transition.
func (c *FocusController) StepChanged(step int) {
	if step == c.step {
		return
	}
	c.step = step
	if step <= StepEmail {
		return
	}
	c.sink.ShowCaret()
	c.sink.FocusField(step)
}

// Click re-applies the focus/visibility effects for the current step,
// independent of any step change. Used when the user clicks the form
// surface to restore focus after clicking away.
func (c *FocusController) Click() {
	c.sink.ShowCaret()
	c.sink.FocusField(c.step)
}
