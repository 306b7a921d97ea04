// Fieldbuilder is a terminal editor for a single multi-select field
// definition.
//
// It validates the field (label, required flag, default value, choices and
// ordering), keeps the last accepted definition in a local store and forwards
// it to a field record server when one is configured.
//
// Usage:
//
//	fieldbuilder [command] [flags]
//
// Running without arguments launches the interactive editor.
// See 'fieldbuilder --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/fieldbuilder/internal/logging"
	"github.com/muurk/fieldbuilder/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fieldbuilder",
	Short: "Multi-select Field Builder",
	Long: `A terminal editor for a multi-select field definition.

Saved fields are written to a local store and, unless disabled, posted to a
field record server (see 'fieldbuilder-server').

If no command is specified, the interactive editor will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the editor when no subcommand provided
		return runEdit(cmd, args)
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
		fmt.Printf("fieldbuilder %s (commit: %s)\n", version.Version, version.Commit)
	},
}
