package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fieldbuilder/internal/config"
	"github.com/muurk/fieldbuilder/internal/field"
	"github.com/muurk/fieldbuilder/internal/logging"
	"github.com/muurk/fieldbuilder/internal/store"
)

// drainTimeout bounds how long the CLI waits for a pending remote post
const drainTimeout = 15 * time.Second

// Persistent flags shared by all commands
var (
	remoteURL   string
	noRemote    bool
	bannedWords string
	dataDir     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&remoteURL, "remote", "", "Record server base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noRemote, "no-remote", false, "Do not post saved fields to the record server")
	rootCmd.PersistentFlags().StringVar(&bannedWords, "banned-words", "", "Banned-word policy to enable (e.g. hate-speech)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory of the local field store (overrides config)")
}

// session is the wiring shared by commands: preferences, gateway and policy.
type session struct {
	registry *config.Registry
	gateway  *store.Gateway
	policy   *field.BannedWordPolicy
}

// loadPreferences returns the config file merged with the persistent flags.
func loadPreferences() (*config.Registry, error) {
	reg, err := config.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	merged := *reg
	remote := *reg.Remote
	editor := *reg.Editor
	merged.Remote = &remote
	merged.Editor = &editor

	if remoteURL != "" {
		merged.SetRemote(remoteURL, true)
	}
	if noRemote {
		merged.Remote.Enabled = false
	}
	if bannedWords != "" {
		merged.SetBannedWords(bannedWords)
	}
	if dataDir != "" {
		merged.DataDir = dataDir
	}
	return &merged, nil
}

func newSession() (*session, error) {
	reg, err := loadPreferences()
	if err != nil {
		return nil, err
	}

	dir, err := reg.ResolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	var remote *store.Client
	if url := reg.RemoteURL(); url != "" {
		remote = store.NewClient(url)
	}

	policy, err := field.LookupPolicy(reg.Editor.BannedWords, reg.Editor.BannedWordSets)
	if err != nil {
		return nil, err
	}

	logging.Debug("Session ready",
		zap.String("data_dir", dir),
		zap.String("remote", reg.RemoteURL()),
		zap.String("banned_words", reg.Editor.BannedWords),
	)

	return &session{
		registry: reg,
		gateway:  store.NewGateway(store.NewLocalStore(dir), remote),
		policy:   policy,
	}, nil
}

func (s *session) newEditor() *field.Editor {
	return field.NewEditor(s.gateway, field.WithPolicy(s.policy))
}

// close waits for any in-flight post to the record server.
func (s *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := s.gateway.Wait(ctx); err != nil {
		logging.Warn("Gave up waiting for record server", zap.Error(err))
	}
}
