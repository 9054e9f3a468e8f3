package form

import "testing"

// recordingSink records effect invocations in order.
type recordingSink struct {
	events []string
	steps  []int
}

func (r *recordingSink) ShowCaret() {
	r.events = append(r.events, "caret")
}

func (r *recordingSink) FocusField(step int) {
	r.events = append(r.events, "focus")
	r.steps = append(r.steps, step)
}

func TestFocusSuppressedAtInitialStep(t *testing.T) {
	sink := &recordingSink{}
	c := NewFocusController(sink)

	c.StepChanged(StepEmail)
	c.StepChanged(StepEmail)

	if len(sink.events) != 0 {
		t.Errorf("no effects should fire at the initial step, got %v", sink.events)
	}
}

func TestFocusFiresOncePerTransition(t *testing.T) {
	sink := &recordingSink{}
	c := NewFocusController(sink)

	c.StepChanged(StepName)

	if len(sink.events) != 2 {
		t.Fatalf("expected caret+focus, got %v", sink.events)
	}
	if sink.events[0] != "caret" || sink.events[1] != "focus" {
		t.Errorf("effects out of order: %v", sink.events)
	}
	if sink.steps[0] != StepName {
		t.Errorf("focused step = %d, want %d", sink.steps[0], StepName)
	}

	// Re-notifying the same step must not re-fire.
	c.StepChanged(StepName)
	if len(sink.events) != 2 {
		t.Errorf("unchanged step re-fired effects: %v", sink.events)
	}
}

func TestFocusRefiresOnEveryChange(t *testing.T) {
	sink := &recordingSink{}
	c := NewFocusController(sink)

	c.StepChanged(StepName)
	c.StepChanged(StepDescription)
	c.StepChanged(StepReview)

	// Two effects per transition, three transitions.
	if len(sink.events) != 6 {
		t.Fatalf("expected 6 effect calls, got %d (%v)", len(sink.events), sink.events)
	}
	wantSteps := []int{StepName, StepDescription, StepReview}
	for i, want := range wantSteps {
		if sink.steps[i] != want {
			t.Errorf("focus %d targeted step %d, want %d", i, sink.steps[i], want)
		}
	}
}

func TestFocusSuppressedOnRestartTransition(t *testing.T) {
	sink := &recordingSink{}
	c := NewFocusController(sink)

	c.StepChanged(StepName)
	c.StepChanged(StepReview)
	before := len(sink.events)

	// Restart lands on step 1, which never triggers the reaction.
	c.StepChanged(StepEmail)
	if len(sink.events) != before {
		t.Errorf("restart transition fired effects: %v", sink.events[before:])
	}

	// The next advance fires again.
	c.StepChanged(StepName)
	if len(sink.events) != before+2 {
		t.Errorf("advance after restart did not re-fire, events %v", sink.events)
	}
}

func TestClickReappliesEffects(t *testing.T) {
	sink := &recordingSink{}
	c := NewFocusController(sink)

	c.StepChanged(StepDescription)
	c.Click()
	c.Click()

	// One transition plus two clicks.
	if len(sink.events) != 6 {
		t.Fatalf("expected 6 effect calls, got %d (%v)", len(sink.events), sink.events)
	}
	for _, step := range sink.steps {
		if step != StepDescription {
			t.Errorf("click refocused step %d, want %d", step, StepDescription)
		}
	}
}

func TestClickAtInitialStep(t *testing.T) {
	sink := &recordingSink{}
	c := NewFocusController(sink)

	// A direct click restores focus even before any step change.
	c.Click()

	if len(sink.events) != 2 {
		t.Fatalf("click should fire both effects, got %v", sink.events)
	}
	if sink.steps[0] != StepEmail {
		t.Errorf("click focused step %d, want %d", sink.steps[0], StepEmail)
	}
}
