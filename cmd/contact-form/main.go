// Contact-form is a conversational contact form for the terminal.
//
// It collects an email address, a name, and a description one step at a
// time, shows a review summary, and acknowledges submission inline. Run it
// without arguments to launch the interactive form; use 'send' for
// scripted, non-interactive submission.
//
// Usage:
//
//	contact-form [command] [flags]
//
// See 'contact-form --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MohsenF3/terminal-contact-form/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "contact-form",
	Short: "Conversational contact form for the terminal",
	Long: `A multi-step contact form that runs in your terminal.

The form asks for your email, name, and a short description one question
at a time, then shows a summary for review before sending.

If no command is specified, the interactive form launches automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the interactive form
		return runForm(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("contact-form %s (commit: %s)\n", version.Version, version.Commit)
	},
}
