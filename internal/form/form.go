package form

// Step indices for the four form states. Steps 1-3 identify the field that
// is currently editable; step 4 is the review/complete state.
const (
	StepEmail       = 1
	StepName        = 2
	StepDescription = 3
	StepReview      = 4
)

// FieldCount is the number of collected fields (steps before review).
const FieldCount = 3

// State is the single mutable record owned by the step state machine.
//
// Exactly one field is active (editable) at a time, determined solely by
// Step: fields with a step index below Step are completed, fields above it
// are not yet reachable. Submitted is independent of the field values and
// only ever set at the review step.
type State struct {
	Step        int
	Email       string
	Name        string
	Description string
	Submitted   bool
}

// New returns the initial form state: step 1, all fields empty.
func New() State {
	return State{Step: StepEmail}
}

// UpdateField sets the field identified by step to value. It is valid only
// while step equals the current step and the form has not reached review;
// any other call is ignored. Values are accepted verbatim - empty strings
// and arbitrary characters included.
func (s *State) UpdateField(step int, value string) {
	if step != s.Step {
		return
	}
	switch step {
	case StepEmail:
		s.Email = value
	case StepName:
		s.Name = value
	case StepDescription:
		s.Description = value
	}
}

// Advance moves to the next step. At the review step it is a no-op; the
// step never skips, wraps, or decrements.
func (s *State) Advance() {
	if s.Step >= StepReview {
		return
	}
	s.Step++
}

// Restart resets the form to its initial state: step 1, all three fields
// empty, submission flag cleared. Valid from any state.
func (s *State) Restart() {
	*s = New()
}

// Submit marks the form as submitted. It is valid only at the review step
// and only once; it never touches the field values.
func (s *State) Submit() {
	if s.Step != StepReview || s.Submitted {
		return
	}
	s.Submitted = true
}

// Value returns the field value for the given step, or "" for the review
// step and out-of-range indices.
func (s State) Value(step int) string {
	switch step {
	case StepEmail:
		return s.Email
	case StepName:
		return s.Name
	case StepDescription:
		return s.Description
	}
	return ""
}

// Completed reports whether the field at step has been confirmed, i.e. the
// form has advanced past it.
func (s State) Completed(step int) bool {
	return step >= StepEmail && step < s.Step
}

// Active reports whether the field at step is the one currently editable.
func (s State) Active(step int) bool {
	return step == s.Step && step < StepReview
}

// FieldLabel returns the display label for a field step.
func FieldLabel(step int) string {
	switch step {
	case StepEmail:
		return "Email"
	case StepName:
		return "Name"
	case StepDescription:
		return "Description"
	}
	return ""
}

// FieldPrompt returns the conversational prompt shown while a field step is
// active.
func FieldPrompt(step int) string {
	switch step {
	case StepEmail:
		return "Hi there! What's your email address?"
	case StepName:
		return "Great. And what should we call you?"
	case StepDescription:
		return "Lastly, how can we help?"
	}
	return ""
}

// FieldPlaceholder returns the placeholder text for a field's entry control.
func FieldPlaceholder(step int) string {
	switch step {
	case StepEmail:
		return "you@example.com"
	case StepName:
		return "Ada Lovelace"
	case StepDescription:
		return "Tell us a little about what you need"
	}
	return ""
}
