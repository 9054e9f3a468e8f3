package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/MohsenF3/terminal-contact-form/internal/config"
	"github.com/MohsenF3/terminal-contact-form/internal/form"
	"github.com/MohsenF3/terminal-contact-form/internal/logging"
	"github.com/MohsenF3/terminal-contact-form/internal/tui"
)

// Command flags
var (
	sendEmail       string
	sendName        string
	sendDescription string
	noAltScreen     bool
	noMouse         bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&noAltScreen, "no-alt-screen", false, "Render inline instead of taking over the terminal")
	rootCmd.PersistentFlags().BoolVar(&noMouse, "no-mouse", false, "Disable click-to-refocus")

	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(initConfigCmd)
}

// formCmd launches the interactive TUI form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Launch the interactive contact form",
	Long: `Launch the interactive contact form in the terminal.

The form walks through three questions (email, name, description) one at
a time, shows a review summary, and confirms submission inline.

This is the default when no command is given.`,
	Example: `  # Launch the form
  contact-form
  # Or explicitly:
  contact-form form

  # Render inline without the alternate screen
  contact-form --no-alt-screen`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	prefs := loadPrefs()

	if err := logging.Initialize(prefs.Logging.Level); err != nil {
		return err
	}
	defer logging.Sync()

	if prefs.UI.AccentColor != "" {
		tui.SetAccentColor(prefs.UI.AccentColor)
	}

	var opts []tea.ProgramOption
	if prefs.UI.AltScreen && !noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if prefs.UI.Mouse && !noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.NewModel(), opts...)
	finished, err := p.Run()
	if err != nil {
		return fmt.Errorf("form error: %w", err)
	}

	// When the user quits from the done screen, repeat the acknowledgment
	// on the regular screen so it survives leaving the alt screen.
	if m, ok := finished.(tui.Model); ok && m.State().Submitted {
		printAcknowledgment(m.State())
	}

	return nil
}

// loadPrefs reads user preferences, falling back to defaults when the file
// is unreadable.
func loadPrefs() *config.Prefs {
	prefs, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring preferences: %v\n", err)
		return config.NewPrefs()
	}
	return prefs
}

// sendCmd submits non-interactively by driving the same state machine
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a message without the interactive form",
	Long: `Submit a contact message directly from flags.

The flags are applied in form order (email, name, description) through the
same step state machine the interactive form uses, then the message is
submitted and the acknowledgment printed. Empty values are accepted, same
as leaving a field blank interactively.`,
	Example: `  contact-form send --email a@b.com --name Ada --description "need help"

  # Fields may be left empty
  contact-form send --email a@b.com`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendEmail, "email", "", "Email address")
	sendCmd.Flags().StringVar(&sendName, "name", "", "Your name")
	sendCmd.Flags().StringVar(&sendDescription, "description", "", "What you need help with")
}

func runSend(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	s := form.New()
	for _, value := range []string{sendEmail, sendName, sendDescription} {
		s.UpdateField(s.Step, value)
		s.Advance()
	}
	s.Submit()
	logging.LogSubmission(len(s.Email), len(s.Name), len(s.Description))

	printAcknowledgment(s)
	return nil
}

// printAcknowledgment prints the submission summary and confirmation to
// stdout, sized to the terminal when one is attached.
func printAcknowledgment(s form.State) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	if width > tui.MaxContentWidth {
		width = tui.MaxContentWidth
	}

	var summary strings.Builder
	for step := form.StepEmail; step <= form.StepDescription; step++ {
		summary.WriteString(tui.RenderCompletedField(form.FieldLabel(step), s.Value(step)))
		if step < form.StepDescription {
			summary.WriteString("\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tui.SuccessColor).
		Padding(0, 2).
		MaxWidth(width)

	fmt.Println(box.Render(summary.String()))
	fmt.Println(lipgloss.NewStyle().
		Foreground(tui.SuccessColor).
		Bold(true).
		Render("✓ Message sent. We'll be in touch soon."))
}

// initConfigCmd writes a default preferences file
var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a default preferences file",
	Long: `Create a default preferences file in the platform config directory.

The file controls presentation only (accent color, alt-screen, mouse).
Form answers are never persisted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.CreateDefault(); err != nil {
			return err
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}
