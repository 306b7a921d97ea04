package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/fieldbuilder/internal/field"
	"github.com/muurk/fieldbuilder/internal/logging"
)

// Gateway persists the field being edited: synchronously to the local store
// and, when a client is configured, asynchronously to the record server.
type Gateway struct {
	local  *LocalStore
	remote *Client

	wg sync.WaitGroup
}

var _ field.Store = (*Gateway)(nil)

// NewGateway creates a gateway. remote may be nil to disable delivery to the
// record server.
func NewGateway(local *LocalStore, remote *Client) *Gateway {
	return &Gateway{local: local, remote: remote}
}

// LocalPath returns the path of the local store file
func (g *Gateway) LocalPath() string {
	return g.local.Path()
}

// Remote returns the record server client, or nil when delivery is disabled
func (g *Gateway) Remote() *Client {
	return g.remote
}

// Save writes def to the local store and then spawns its delivery to the
// record server without waiting for it. Delivery failures are logged and
// otherwise dropped; they never undo the local write.
func (g *Gateway) Save(ctx context.Context, def *field.Definition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("failed to encode field: %w", err)
	}

	if err := g.local.Set(FieldKey, data); err != nil {
		return err
	}
	logging.LogFieldSaved("local", def.Label, len(def.Choices))

	if g.remote == nil {
		return nil
	}

	sent := cloneDefinition(def)
	// Delivery outlives the caller's context on purpose: there is no cancellation.
	deliveryCtx := context.WithoutCancel(ctx)

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.deliver(deliveryCtx, sent)
	}()

	return nil
}

func (g *Gateway) deliver(ctx context.Context, def *field.Definition) {
	resp, err := g.remote.PostField(ctx, def)
	if err != nil {
		logging.LogRemoteFailure(g.remote.FieldURL(), err)
		return
	}

	if err := VerifyEcho(def, resp); err != nil {
		logging.Warn("Record server echo does not match saved field",
			zap.String("url", g.remote.FieldURL()),
			zap.Error(err),
		)
		return
	}

	logging.LogFieldSaved("remote", def.Label, len(def.Choices))
}

// Load returns the locally saved definition. It never contacts the record server.
func (g *Gateway) Load() (*field.Definition, bool, error) {
	raw, ok, err := g.local.Get(FieldKey)
	if err != nil {
		return nil, false, err
	}
	if !ok || string(raw) == "null" {
		return nil, false, nil
	}

	var def field.Definition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, false, fmt.Errorf("failed to parse saved field: %w", err)
	}
	return &def, true, nil
}

// Clear removes the locally saved definition. The record server is not touched.
func (g *Gateway) Clear() error {
	return g.local.Remove(FieldKey)
}

// Wait blocks until every in-flight delivery has finished or ctx is done.
func (g *Gateway) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func cloneDefinition(def *field.Definition) *field.Definition {
	c := *def
	c.Choices = append([]string(nil), def.Choices...)
	if def.Default != nil {
		dv := *def.Default
		c.Default = &dv
	}
	return &c
}
