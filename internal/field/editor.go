package field

import (
	"context"

	"go.uber.org/zap"

	"github.com/muurk/fieldbuilder/internal/logging"
)

// Store is the persistence boundary the editor saves through.
type Store interface {
	// Save persists def. Remote delivery, if any, happens asynchronously.
	Save(ctx context.Context, def *Definition) error
	// Load returns the locally saved definition and whether one exists.
	Load() (*Definition, bool, error)
	// Clear removes the locally saved definition.
	Clear() error
}

// Editor holds the draft for the single field being edited and the current
// error message. It is not safe for concurrent use; front ends drive it from
// one goroutine.
type Editor struct {
	Draft Draft

	// Error is the message of the last failed submit, or "" when there is none
	Error string

	// Saved is the definition accepted by the last successful submit
	Saved *Definition

	store  Store
	policy *BannedWordPolicy
}

// EditorOption configures an Editor
type EditorOption func(*Editor)

// WithPolicy enables a banned-word policy. A nil policy disables the check.
func WithPolicy(p *BannedWordPolicy) EditorOption {
	return func(e *Editor) {
		e.policy = p
	}
}

// NewEditor creates an editor with an empty draft.
func NewEditor(store Store, opts ...EditorOption) *Editor {
	e := &Editor{
		Draft: NewDraft(),
		store: store,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Policy returns the configured banned-word policy (may be nil)
func (e *Editor) Policy() *BannedWordPolicy {
	return e.policy
}

// Hydrate replaces the draft with the locally saved definition, if any.
// It reports whether a definition was found. Read failures are logged and
// leave the draft empty.
func (e *Editor) Hydrate() bool {
	def, ok, err := e.store.Load()
	if err != nil {
		logging.Warn("Failed to load saved field", zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	e.Draft = DraftFromDefinition(def)
	e.Saved = def
	return true
}

// Submit validates the draft. On success the normalized definition is handed
// to the store and Submit returns true; on failure Error is set and nothing
// is saved. Store failures are logged, never surfaced.
func (e *Editor) Submit(ctx context.Context) bool {
	e.Error = ""

	def, err := Validate(e.Draft, e.policy)
	if err != nil {
		e.Error = err.Error()
		logging.Debug("Field rejected",
			zap.String("rule", RuleOf(err).String()),
			zap.String("message", e.Error),
		)
		return false
	}

	if err := e.store.Save(ctx, def); err != nil {
		logging.Error("Failed to save field locally", zap.Error(err))
	}
	e.Saved = def
	return true
}

// Cancel resets the draft, clears the error and removes the local copy.
// Anything already sent to the record server is left alone.
func (e *Editor) Cancel() {
	e.Draft = NewDraft()
	e.Error = ""
	e.Saved = nil
	if err := e.store.Clear(); err != nil {
		logging.Error("Failed to clear saved field", zap.Error(err))
	}
}
