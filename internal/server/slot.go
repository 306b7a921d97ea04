package server

import (
	"encoding/json"
	"sync"
)

// Slot holds at most one JSON document. It starts empty and every Put
// replaces the whole value; the last writer wins.
type Slot struct {
	mu     sync.RWMutex
	value  json.RawMessage
	filled bool
}

// Put replaces the slot's value
func (s *Slot) Put(value json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = append(json.RawMessage(nil), value...)
	s.filled = true
}

// Get returns the stored value and whether anything has been stored yet.
// A stored JSON null is reported as filled.
func (s *Slot) Get() (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.filled {
		return nil, false
	}
	return append(json.RawMessage(nil), s.value...), true
}
