package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/fieldbuilder/internal/config"
	"github.com/muurk/fieldbuilder/internal/discovery"
	"github.com/muurk/fieldbuilder/internal/editor/tui"
	"github.com/muurk/fieldbuilder/internal/field"
	"github.com/muurk/fieldbuilder/internal/store"
	"github.com/muurk/fieldbuilder/internal/ui"
)

// Command flags
var (
	setLabel       string
	setRequired    bool
	setChoices     []string
	setChoicesFile string
	setDefault     string
	setOrder       string

	outputFormat string
	assumeYes    bool
	scanTimeout  int
)

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(remoteCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
}

// editCmd launches the interactive editor
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Launch the interactive field editor",
	Long: `Launch the interactive editor for the multi-select field.

The form is pre-filled with the locally saved field, if there is one.
Press ctrl+s to save, ctrl+x to cancel (clears the saved copy) and esc to quit.`,
	Example: `  # Launch the editor
  fieldbuilder edit
  # Or simply (edit is default):
  fieldbuilder

  # Edit without posting to the record server
  fieldbuilder --no-remote

  # Reject choices from the hate-speech word list
  fieldbuilder --banned-words hate-speech`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	editor := s.newEditor()
	editor.Hydrate()

	if err := tui.Run(cmd.Context(), editor); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}

// setCmd submits a field without the interactive editor
var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Validate and save a field from flags",
	Long: `Validate a field definition given on the command line and save it.

The same rules as the interactive editor apply. On a validation failure the
rule's message is printed and nothing is saved.`,
	Example: `  # Save a colour field
  fieldbuilder set --label Color --choice Red --choice Green --choice Blue

  # Read choices from a file, one per line
  fieldbuilder set --label Country --choices-file countries.txt --default Canada

  # Keep the entered order
  fieldbuilder set --label Size --choice S --choice M --choice L --order custom`,
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&setLabel, "label", "", "Field label")
	setCmd.Flags().BoolVar(&setRequired, "required", false, "A value is required")
	setCmd.Flags().StringArrayVar(&setChoices, "choice", nil, "Choice (repeatable)")
	setCmd.Flags().StringVar(&setChoicesFile, "choices-file", "", "File with one choice per line ('-' for stdin)")
	setCmd.Flags().StringVar(&setDefault, "default", "", "Default value")
	setCmd.Flags().StringVar(&setOrder, "order", string(field.OrderAlphabetical), "Display order (alpha, custom)")
}

func runSet(cmd *cobra.Command, args []string) error {
	order, err := field.ParseOrder(setOrder)
	if err != nil {
		return err
	}

	text, err := choicesText(setChoices, setChoicesFile)
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	editor := s.newEditor()
	editor.Draft = field.Draft{
		Label:        setLabel,
		Required:     setRequired,
		DefaultValue: setDefault,
		ChoicesText:  text,
		Order:        order,
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	if !editor.Submit(cmd.Context()) {
		p.PrintError("Field not saved", errors.New(editor.Error), nil)
		if hasOverflow(text) {
			p.PrintChoicesPreview(text)
		}
		return errors.New(editor.Error)
	}

	details := []ui.Detail{
		{Key: "Field", Value: editor.Saved.Summary()},
		{Key: "Stored in", Value: s.gateway.LocalPath()},
	}
	if remote := s.gateway.Remote(); remote != nil {
		details = append(details, ui.Detail{Key: "Posting to", Value: remote.FieldURL()})
	}
	p.PrintSuccess("Field saved", details)
	return nil
}

// choicesText joins repeated --choice values and the optional choices file
// into the newline-separated text the editor expects.
func choicesText(choices []string, path string) (string, error) {
	lines := append([]string(nil), choices...)
	if path != "" {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return "", fmt.Errorf("failed to read choices file: %w", err)
		}
		lines = append(lines, strings.TrimRight(string(data), "\n"))
	}
	return strings.Join(lines, "\n"), nil
}

func hasOverflow(text string) bool {
	for _, seg := range field.Highlight(text) {
		if seg.Overflows() {
			return true
		}
	}
	return false
}

// showCmd prints the locally saved field
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the locally saved field",
	Long: `Display the field definition held in the local store.

This never contacts the record server; use 'fieldbuilder remote' for that.`,
	Example: `  # Show the saved field
  fieldbuilder show

  # Compact output format
  fieldbuilder show --format compact

  # JSON output for scripting
  fieldbuilder show --format json`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	def, ok, err := s.gateway.Load()
	if err != nil {
		return fmt.Errorf("failed to read saved field: %w", err)
	}
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "No field has been saved yet.")
		return nil
	}

	out, err := def.Format(outputFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
	return nil
}

// clearCmd removes the locally saved field
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the locally saved field",
	Long: `Remove the field definition from the local store.

Anything already posted to the record server is left in place.`,
	Example: `  # Clear with confirmation
  fieldbuilder clear

  # Clear without asking
  fieldbuilder clear --yes`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	if !assumeYes {
		ok := ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Clear saved field", []string{
			"The field in " + s.gateway.LocalPath() + " will be removed",
			"The record server keeps its copy",
		})
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	if err := s.gateway.Clear(); err != nil {
		return fmt.Errorf("failed to clear saved field: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved field cleared.")
	return nil
}

// remoteCmd reads the record server's slot
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Show the field held by the record server",
	Long: `Query the record server for the last field posted to it.

Uses the configured record server, or --remote.`,
	Example: `  # Query the configured server
  fieldbuilder remote

  # Query a specific server
  fieldbuilder remote --remote http://192.168.1.20:4000`,
	RunE: runRemote,
}

func runRemote(cmd *cobra.Command, args []string) error {
	reg, err := loadPreferences()
	if err != nil {
		return err
	}

	url := reg.Remote.URL
	if url == "" {
		return errors.New("no record server configured (use --remote)")
	}

	client := store.NewClient(url)
	client.SetTimeout(10 * time.Second)

	resp, err := client.GetField(cmd.Context())
	if err != nil {
		p := ui.NewPrinter(cmd.OutOrStdout())
		p.PrintError("Record server query failed", err, []string{
			store.ShortMessage(err),
			"Start one with 'fieldbuilder-server serve'",
			"Use 'fieldbuilder scan' to find servers on the network",
		})
		return fmt.Errorf("failed to query %s: %w", client.FieldURL(), err)
	}

	if !resp.HasData() {
		fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
		return nil
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, resp.Saved, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
	return nil
}

// scanCmd discovers record servers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for record servers on the network",
	Long: `Scan for field record servers using mDNS/DNS-SD discovery.

Servers started with 'fieldbuilder-server serve --advertise' announce
themselves on the local network.`,
	Example: `  # Scan for 5 seconds (default)
  fieldbuilder scan

  # Longer scan
  fieldbuilder scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for record servers (timeout: %ds)...\n\n", scanTimeout)

	services, err := discovery.Scan(cmd.Context(), time.Duration(scanTimeout)*time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(services) == 0 {
		fmt.Fprintln(out, "No record servers found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		fmt.Fprintln(out, "  - Start the server with 'fieldbuilder-server serve --advertise'")
		fmt.Fprintln(out, "  - Check that multicast traffic is allowed on this network")
		fmt.Fprintln(out, "  - Try increasing --timeout")
		return nil
	}

	fmt.Fprintf(out, "Found %d server(s):\n\n", len(services))
	for i, svc := range services {
		fmt.Fprintf(out, "%d. %s\n", i+1, svc.Instance)
		fmt.Fprintf(out, "   Host:    %s\n", svc.Hostname)
		fmt.Fprintf(out, "   URL:     %s\n", svc.BaseURL())
		if v := svc.Metadata["version"]; v != "" {
			fmt.Fprintf(out, "   Version: %s\n", v)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Use 'fieldbuilder --remote <url>' to post to a server")
	fmt.Fprintln(out, "Use 'fieldbuilder config save --remote <url>' to remember it")
	return nil
}

// configCmd shows the effective preferences
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show preferences",
	Long: `Show the effective preferences: the config file merged with any
--remote, --no-remote, --banned-words and --data-dir flags.`,
	RunE: runConfigShow,
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective preferences to the config file",
	Example: `  # Remember a record server
  fieldbuilder config save --remote http://192.168.1.20:4000

  # Turn on the banned-word policy for every session
  fieldbuilder config save --banned-words hate-speech`,
	RunE: runConfigSave,
}

func init() {
	configCmd.AddCommand(configSaveCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	reg, err := loadPreferences()
	if err != nil {
		return err
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	dir, err := reg.ResolveDataDir()
	if err != nil {
		return err
	}

	banned := "(disabled)"
	policy, err := field.LookupPolicy(reg.Editor.BannedWords, reg.Editor.BannedWordSets)
	if err != nil {
		return err
	}
	if policy != nil {
		banned = fmt.Sprintf("%s: %s", policy.Flag, strings.Join(policy.Words(), ", "))
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Preferences", []ui.Detail{
		{Key: "Config", Value: path},
		{Key: "Data dir", Value: dir},
		{Key: "Remote", Value: reg.Remote.URL},
		{Key: "Posting", Value: fmt.Sprintf("%v", reg.Remote.Enabled)},
		{Key: "Banned", Value: banned},
	})
	return nil
}

func runConfigSave(cmd *cobra.Command, args []string) error {
	reg, err := loadPreferences()
	if err != nil {
		return err
	}
	if _, err := field.LookupPolicy(reg.Editor.BannedWords, reg.Editor.BannedWordSets); err != nil {
		return err
	}
	if err := reg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	path, _ := config.GetConfigPath()
	fmt.Fprintf(cmd.OutOrStdout(), "Preferences saved to %s\n", path)
	return nil
}
