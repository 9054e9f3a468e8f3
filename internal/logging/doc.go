// Package logging provides structured logging for the contact form.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the application. Because the primary surface is a
// full-screen terminal UI, logging is silent by default: output is only
// produced when CONTACT_FORM_LOG_LEVEL is set, and it always goes to stderr
// so it never corrupts the rendered form.
//
// # Log Levels
//
//   - Debug: per-keystroke field updates, step transitions
//   - Info: lifecycle events (restart, submission)
//   - Warn: non-fatal issues (unreadable preferences file)
//   - Error: fatal issues (startup failures)
//
// # Privacy
//
// Field contents are never logged. Domain helpers such as LogFieldUpdate and
// LogSubmission record value lengths only.
//
// # Usage
//
//	logging.InitializeFromEnv()
//	defer logging.Sync()
//
//	logging.LogStepChange(1, 2)
package logging
