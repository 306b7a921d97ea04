package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	if err := InitializeFromEnv(); err != nil {
		t.Fatalf("InitializeFromEnv() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be silent when no level is set")
	}
}

func TestInitialize_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldbuilder.log")
	t.Setenv(LogFileEnvVar, path)
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	if err := Initialize("warn"); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}

	Warn("disk nearly full")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "disk nearly full") {
		t.Errorf("log file = %q", data)
	}
}

func TestDomainHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	LogFieldSaved("local", "Color", 3)
	LogRemoteFailure("http://localhost:4000/api/field", errors.New("refused"))
	LogRequestBody("/api/field", []byte(strings.Repeat("x", maxBodyLog+10)))

	if logs.Len() != 3 {
		t.Fatalf("got %d entries, want 3", logs.Len())
	}

	saved := logs.All()[0]
	if saved.Message != "Field saved" || saved.ContextMap()["choices"] != int64(3) {
		t.Errorf("unexpected entry: %+v", saved)
	}

	failure := logs.All()[1]
	if failure.Level != zapcore.ErrorLevel || failure.ContextMap()["error"] != "refused" {
		t.Errorf("unexpected entry: %+v", failure)
	}

	body := logs.All()[2].ContextMap()["body"].(string)
	if len(body) != maxBodyLog+3 || !strings.HasSuffix(body, "...") {
		t.Errorf("body should be truncated, got %d bytes", len(body))
	}
}
