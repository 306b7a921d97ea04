package config

import "github.com/muurk/fieldbuilder/internal/urls"

// CurrentVersion is the only registry file version this build understands
const CurrentVersion = 1

// Registry represents the entire user configuration file.
type Registry struct {
	Version int          `yaml:"version"`
	Remote  *RemotePrefs `yaml:"remote,omitempty"`
	Editor  *EditorPrefs `yaml:"editor,omitempty"`

	// DataDir holds the local field store. Empty means the config directory.
	DataDir string `yaml:"data_dir,omitempty"`
}

// RemotePrefs configures delivery of saved fields to the record server.
type RemotePrefs struct {
	URL     string `yaml:"url"`     // Base URL, e.g. "http://localhost:4000"
	Enabled bool   `yaml:"enabled"` // Post saved fields to URL
}

// EditorPrefs configures the field editor.
type EditorPrefs struct {
	// BannedWords is the feature flag of the banned-word policy to enable.
	// Empty disables the policy.
	BannedWords string `yaml:"banned_words,omitempty"`

	// BannedWordSets adds or overrides banned-word sets keyed by feature flag.
	BannedWordSets map[string][]string `yaml:"banned_word_sets,omitempty"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: CurrentVersion,
		Remote:  defaultRemote(),
		Editor:  &EditorPrefs{},
	}
}

func defaultRemote() *RemotePrefs {
	return &RemotePrefs{
		URL:     urls.DefaultRecordServer,
		Enabled: true,
	}
}

// RemoteURL returns the record server URL, or "" when delivery is disabled.
func (r *Registry) RemoteURL() string {
	if r.Remote == nil || !r.Remote.Enabled {
		return ""
	}
	return r.Remote.URL
}

// SetRemote updates the record server preferences.
func (r *Registry) SetRemote(url string, enabled bool) {
	r.Remote = &RemotePrefs{URL: url, Enabled: enabled}
}

// SetBannedWords enables the banned-word policy for flag ("" disables it).
func (r *Registry) SetBannedWords(flag string) {
	if r.Editor == nil {
		r.Editor = &EditorPrefs{}
	}
	r.Editor.BannedWords = flag
}

// ResolveDataDir returns the directory of the local field store.
func (r *Registry) ResolveDataDir() (string, error) {
	if r.DataDir != "" {
		return r.DataDir, nil
	}
	return GetConfigDir()
}
