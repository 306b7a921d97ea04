// Fieldbuilder-server is the field record server.
//
// It keeps the most recently posted field definition in memory and serves it
// back over HTTP at /api/field. Nothing is written to disk; a restart empties
// the slot.
//
// Usage:
//
//	fieldbuilder-server serve [flags]
//
// See 'fieldbuilder-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/fieldbuilder/internal/config"
	"github.com/muurk/fieldbuilder/internal/server"
	"github.com/muurk/fieldbuilder/internal/urls"
	"github.com/muurk/fieldbuilder/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fieldbuilder-server",
	Short: "Field Record Server",
	Long: `A minimal HTTP server that stores the last posted field definition.

POST /api/field overwrites the single in-memory slot and echoes the body.
GET /api/field returns the slot, or a message when nothing has been posted.

Note: For editing fields, use the separate 'fieldbuilder' utility.`,
	Version:      version.Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command flags
var (
	host      string
	port      int
	logLevel  string
	advertise bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the record server",
	Long: `Start the field record server.

Settings are read from the environment first (FIELDBUILDER_SERVER_HOST,
FIELDBUILDER_SERVER_PORT, FIELDBUILDER_SERVER_LOG_LEVEL,
FIELDBUILDER_SERVER_ADVERTISE); flags given on the command line win.

With --advertise the server registers itself via mDNS so that
'fieldbuilder scan' can find it.`,
	Example: `  # Start on the default port
  fieldbuilder-server serve

  # Custom port with debug logging
  fieldbuilder-server serve --port 8080 --log-level debug

  # Announce the server on the local network
  fieldbuilder-server serve --advertise`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "", "Listen host (empty = all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", urls.DefaultServerPort, "Listen port")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().BoolVar(&advertise, "advertise", false, "Advertise the server via mDNS")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := &server.Config{}
	if err := config.ParseEnv(cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = host
	}
	if flags.Changed("port") {
		cfg.Port = port
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("advertise") {
		cfg.Advertise = advertise
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fieldbuilder-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
