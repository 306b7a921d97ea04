package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// FieldKey is the fixed key the saved field lives under
	FieldKey = "savedField"

	// StorageFile is the name of the local store file inside the data directory
	StorageFile = "storage.json"
)

// LocalStore is a small persistent key-value store backed by one JSON file.
// Every value is a JSON document; writes replace the whole file atomically.
type LocalStore struct {
	path string
	mu   sync.Mutex
}

// NewLocalStore creates a store in dir. The directory is created on first write.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{path: filepath.Join(dir, StorageFile)}
}

// Path returns the backing file path
func (s *LocalStore) Path() string {
	return s.path
}

// Get returns the raw JSON stored under key and whether it exists.
func (s *LocalStore) Get(key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

// Set stores value (which must be valid JSON) under key.
func (s *LocalStore) Set(key string, value json.RawMessage) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for %q is not valid JSON", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.write(entries)
}

// Remove deletes key. Removing a missing key is not an error.
func (s *LocalStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.write(entries)
}

func (s *LocalStore) read() (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read local store: %w", err)
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse local store %s: %w", s.path, err)
	}
	// A file holding JSON null decodes to a nil map.
	if entries == nil {
		entries = make(map[string]json.RawMessage)
	}
	return entries, nil
}

func (s *LocalStore) write(entries map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode local store: %w", err)
	}

	// Write to temporary file first (atomic write)
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary store file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save local store: %w", err)
	}

	return nil
}
