package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MohsenF3/terminal-contact-form/internal/version"
)

// Application branding constants
const (
	AppName   = "CONTACT FORM"
	GitHubURL = "github.com/MohsenF3/terminal-contact-form"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MaxContentWidth  = 96 // Maximum content width before capping
)

// Color palette
var (
	AccentColor  = lipgloss.Color("#7D56F4") // Purple - caret, borders, highlights
	SuccessColor = lipgloss.Color("#43BF6D") // Green - completed fields, confirmation
	WarningColor = lipgloss.Color("#FFA500") // Orange - restart action
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
	SubtleColor  = lipgloss.Color("#626262") // Gray - hints, placeholders
)

// Common styles
var (
	// Caret indicator shown next to the active field
	CaretStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// Prompt question above the active entry control
	PromptStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// Label of a completed field ("Email", "Name", ...)
	CompletedLabelStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Value of a completed field, rendered as static text
	CompletedValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// Checkmark next to completed fields
	CompletedMarkStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// Hint text under the entry control
	HintStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Review summary box
	SummaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(AccentColor).
			Padding(1, 2)

	// Review action button (unselected)
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 3)

	// Review action button (selected)
	SelectedButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(AccentColor).
				Bold(true).
				Padding(0, 3)

	// Post-submission confirmation box
	ConfirmationStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SuccessColor).
				Padding(1, 2)
)

// SetAccentColor overrides the accent used for the caret, borders, and
// highlights. Called once at startup from user preferences, before any
// rendering happens.
func SetAccentColor(color string) {
	if color == "" {
		return
	}
	AccentColor = lipgloss.Color(color)
	CaretStyle = CaretStyle.Foreground(AccentColor)
	SummaryBoxStyle = SummaryBoxStyle.BorderForeground(AccentColor)
	SelectedButtonStyle = SelectedButtonStyle.Background(AccentColor)
}

// RenderCompletedField renders an answered field as a static summary line.
func RenderCompletedField(label, value string) string {
	return CompletedMarkStyle.Render("✓ ") +
		CompletedLabelStyle.Render(padLabel(label)) +
		CompletedValueStyle.Render(value)
}

// padLabel right-pads a field label so completed values line up.
func padLabel(label string) string {
	const width = 13 // longest label ("Description") plus two spaces
	for len(label) < width {
		label += " "
	}
	return label
}

// ContentWidth clamps the terminal width to the usable content range.
func ContentWidth(terminalWidth int) int {
	if terminalWidth < MinTerminalWidth {
		return MinTerminalWidth
	}
	if terminalWidth > MaxContentWidth {
		return MaxContentWidth
	}
	return terminalWidth
}

// RenderFrame wraps screen content in the application chrome: a header with
// the app name and version, the content area, and a footer with
// context-sensitive help. Every screen of the form renders through this.
func RenderFrame(content, helpText string, terminalWidth, terminalHeight int) string {
	width := ContentWidth(terminalWidth)

	header := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName+" v"+AppVersion()) +
		"  " +
		lipgloss.NewStyle().Foreground(SubtleColor).Render(GitHubURL)

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(AccentColor).
		Width(width - 4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(AccentColor).
		Width(width - 4).
		Padding(0, 1)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(header),
		lipgloss.NewStyle().Width(width-4).Render(content),
		footerStyle.Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(helpText)),
	)

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor).
		Width(width - 2).
		Render(inner)

	if terminalWidth <= 0 || terminalHeight <= 0 {
		return frame
	}
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		frame,
	)
}
