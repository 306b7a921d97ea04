package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/fieldbuilder/internal/field"
	"github.com/muurk/fieldbuilder/internal/logging"
)

// observeLogs routes the global logger to an in-memory sink for one test
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logging.SetLogger(zap.New(core))
	t.Cleanup(func() { logging.SetLogger(zap.NewNop()) })
	return logs
}

func waitDrained(t *testing.T, g *Gateway) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, g.Wait(ctx))
}

func TestGateway_LocalRoundTrip(t *testing.T) {
	g := NewGateway(NewLocalStore(t.TempDir()), nil)
	assert.Nil(t, g.Remote())

	_, ok, err := g.Load()
	require.NoError(t, err)
	assert.False(t, ok, "fresh store holds nothing")

	def := sampleDefinition()
	require.NoError(t, g.Save(context.Background(), def))

	got, ok, err := g.Load()
	require.NoError(t, err)
	require.True(t, ok)
	if diff := cmp.Diff(def, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, g.Clear())
	_, ok, err = g.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGateway_RoundTripWithoutDefault(t *testing.T) {
	g := NewGateway(NewLocalStore(t.TempDir()), nil)
	def := &field.Definition{Label: "Tags", Choices: []string{}, Order: field.OrderAlphabetical}

	require.NoError(t, g.Save(context.Background(), def))

	got, ok, err := g.Load()
	require.NoError(t, err)
	require.True(t, ok)
	if diff := cmp.Diff(def, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestGateway_LoadTreatsNullAsAbsent(t *testing.T) {
	local := NewLocalStore(t.TempDir())
	require.NoError(t, local.Set(FieldKey, []byte("null")))

	_, ok, err := NewGateway(local, nil).Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGateway_DeliversToRecordServer(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := echoServer(t)
	defer srv.Close()
	logs := observeLogs(t)

	client := NewClient(srv.URL)
	client.HTTPClient = srv.Client()
	g := NewGateway(NewLocalStore(t.TempDir()), client)

	def := sampleDefinition()
	require.NoError(t, g.Save(context.Background(), def))
	waitDrained(t, g)

	resp, err := client.GetField(context.Background())
	require.NoError(t, err)
	require.True(t, resp.HasData())
	assert.JSONEq(t,
		`{"label":"Size","required":true,"choices":["S","M","L"],"order":"custom","default":"M"}`,
		string(resp.Saved))

	saved := logs.FilterMessage("Field saved").All()
	require.Len(t, saved, 2)
	assert.Equal(t, "local", saved[0].ContextMap()["destination"])
	assert.Equal(t, "remote", saved[1].ContextMap()["destination"])
}

func TestGateway_DeliveryIgnoresCallerCancellation(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	client := NewClient(srv.URL)
	client.HTTPClient = srv.Client()
	g := NewGateway(NewLocalStore(t.TempDir()), client)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, g.Save(ctx, sampleDefinition()))
	cancel()
	waitDrained(t, g)

	resp, err := client.GetField(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.HasData(), "delivery should complete after the caller's context is cancelled")
}

func TestGateway_DeliveryUsesSnapshot(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	client := NewClient(srv.URL)
	client.HTTPClient = srv.Client()
	g := NewGateway(NewLocalStore(t.TempDir()), client)

	def := sampleDefinition()
	require.NoError(t, g.Save(context.Background(), def))
	def.Label = "Mutated"
	def.Choices[0] = "XS"
	waitDrained(t, g)

	resp, err := client.GetField(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(resp.Saved), `"label":"Size"`)
	assert.Contains(t, string(resp.Saved), `"S"`)
}

func TestGateway_RemoteFailureKeepsLocalWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dead := httptest.NewServer(http.NotFoundHandler())
	url := dead.URL
	dead.Close()
	logs := observeLogs(t)

	g := NewGateway(NewLocalStore(t.TempDir()), NewClient(url))

	def := sampleDefinition()
	require.NoError(t, g.Save(context.Background(), def), "remote failure never reaches the caller")
	waitDrained(t, g)

	got, ok, err := g.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, def.Label, got.Label)

	failures := logs.FilterMessage("Failed to POST field to record server").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, url+"/api/field", failures[0].ContextMap()["url"])
}

func TestGateway_EchoMismatchLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","saved":{"label":"Other"}}`))
	}))
	defer srv.Close()
	logs := observeLogs(t)

	client := NewClient(srv.URL)
	client.HTTPClient = srv.Client()
	g := NewGateway(NewLocalStore(t.TempDir()), client)

	require.NoError(t, g.Save(context.Background(), sampleDefinition()))
	waitDrained(t, g)

	assert.Equal(t, 1, logs.FilterMessage("Record server echo does not match saved field").Len())
	assert.Zero(t, logs.FilterField(zap.String("destination", "remote")).Len())
}

func TestGateway_LocalFailureSkipsRemote(t *testing.T) {
	var posts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts.Add(1)
	}))
	defer srv.Close()

	// A regular file where the data directory should be makes the write fail.
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	g := NewGateway(NewLocalStore(blocker), NewClient(srv.URL))
	assert.Error(t, g.Save(context.Background(), sampleDefinition()))
	waitDrained(t, g)
	assert.Zero(t, posts.Load())
}

func TestGateway_WaitHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()

	g := NewGateway(NewLocalStore(t.TempDir()), NewClient(srv.URL))
	require.NoError(t, g.Save(context.Background(), sampleDefinition()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, g.Wait(ctx), context.DeadlineExceeded)

	close(release)
	waitDrained(t, g)
}
