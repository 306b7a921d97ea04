// Package config manages the field builder's persistent preferences.
//
// Preferences live in a YAML file in the OS-appropriate configuration
// directory:
//   - Linux: $XDG_CONFIG_HOME/fieldbuilder/config.yaml or ~/.config/fieldbuilder/config.yaml
//   - macOS: ~/.config/fieldbuilder/config.yaml
//   - Windows: %LOCALAPPDATA%\fieldbuilder\config.yaml
//
// Example file:
//
//	version: 1
//	remote:
//	  url: http://localhost:4000
//	  enabled: true
//	editor:
//	  banned_words: hate-speech
//	  banned_word_sets:
//	    strict: [foo, bar]
//
// The registry is loaded lazily and cached; writes go through a temporary
// file and a rename so a crash never leaves a half-written file behind.
//
// Process-level settings of the record server come from the environment
// instead, parsed with ParseEnv.
package config
