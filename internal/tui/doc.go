// Package tui implements the terminal user interface for the contact form.
//
// Built on the Bubble Tea framework, the package follows the Elm
// architecture: Model holds all state, Update handles events, View is a
// pure function of the model. The form's actual semantics live in
// internal/form; this package only translates terminal events into the four
// form operations and renders the resulting state.
//
// # Screen Flow
//
// The form moves through three visual phases, all driven by form.State:
//
//  1. Entry (steps 1-3): previously answered fields render as static
//     checkmarked lines, the active field as a conversational prompt with a
//     bubbles/textinput control. Fields past the active step are not
//     rendered. Enter confirms the active field and advances.
//
//  2. Review (step 4): a bordered summary of all three answers plus two
//     actions, "Send it!" and "Restart", switched with left/right/tab and
//     activated with enter.
//
//  3. Done: after submission the actions are replaced by an inline
//     confirmation panel. "r" starts a new message, "q" quits.
//
// # Focus and the Caret
//
// The caret indicator next to the active entry control starts hidden and
// appears the first time the step changes, driven by form.FocusController.
// The controller's effects arrive through a small sink struct because
// Bubble Tea models are copied by value: the controller records what should
// happen, and the model applies it to itself immediately after each
// operation. Mouse clicks anywhere on the form surface re-apply the same
// effects, restoring focus after the user clicked away.
//
// # Key Bindings
//
// Each phase has its own bubbles/key keymap rendered by bubbles/help in
// the footer:
//   - Entry: enter continue, esc quit
//   - Review: ←/→ choose, enter confirm, q quit
//   - Done: r new message, q quit
//
// ctrl+c quits from anywhere.
package tui
