// Package form implements the conversational contact form's core state.
//
// The form collects three fields (email, name, description) one step at a
// time, in a fixed order, then presents a review step before submission.
// Two pieces collaborate:
//
//   - State: the step state machine. It owns the current step index, the
//     three field values, and the submission flag. All mutation goes through
//     four operations (UpdateField, Advance, Restart, Submit); calls made
//     outside their contract are silent no-ops, never errors.
//
//   - FocusController: the focus/visibility reaction. Whenever the active
//     step changes (except to the very first step) it reveals the caret
//     indicator and moves input focus to the active field's entry control,
//     through a FocusSink implemented by the rendering layer.
//
// # Step Flow
//
//	1 (email) → 2 (name) → 3 (description) → 4 (review)
//
// Step 4 is terminal: the only transitions out of it are Submit (which sets
// the submission flag and stays at step 4) and Restart (which hard-resets
// everything to the empty step-1 state). Edits are one-directional - there
// is no way to change a field after advancing past it except via Restart.
//
// The package has no rendering dependency. The TUI in internal/tui consumes
// State and drives the operations from user input events.
package form
