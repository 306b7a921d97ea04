package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/fieldbuilder/internal/discovery"
	"github.com/muurk/fieldbuilder/internal/logging"
	"github.com/muurk/fieldbuilder/internal/version"
)

// shutdownTimeout bounds graceful shutdown after a signal
const shutdownTimeout = 10 * time.Second

// Config holds the server configuration. Fields can be populated from the
// environment with config.ParseEnv and then overridden by flags.
type Config struct {
	Host      string `env:"FIELDBUILDER_SERVER_HOST"`
	Port      int    `env:"FIELDBUILDER_SERVER_PORT"      envDefault:"4000"`
	LogLevel  string `env:"FIELDBUILDER_SERVER_LOG_LEVEL" envDefault:"info"`
	Advertise bool   `env:"FIELDBUILDER_SERVER_ADVERTISE"` // Register via mDNS
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Server is the record server: one in-memory slot behind /api/field
type Server struct {
	config     *Config
	slot       *Slot
	httpServer *http.Server
	listener   net.Listener
	ad         *discovery.Advertisement
}

// New creates a new Server instance
func New(config *Config) (*Server, error) {
	if err := logging.Initialize(config.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if config.Port < 0 || config.Port > 65535 {
		return nil, fmt.Errorf("port must be 0-65535, got %d", config.Port)
	}

	slot := &Slot{}
	return &Server{
		config: config,
		slot:   slot,
		httpServer: &http.Server{
			Handler:           NewHandler(slot),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Slot returns the server's field slot
func (s *Server) Slot() *Slot {
	return s.slot
}

// Listen binds the listen address. Start calls it when it has not been
// called yet; calling it first lets callers learn the bound address.
func (s *Server) Listen() (net.Addr, error) {
	if s.listener != nil {
		return s.listener.Addr(), nil
	}
	listener, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.config.Addr(), err)
	}
	s.listener = listener
	return listener.Addr(), nil
}

// Serve serves HTTP until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	addr, err := s.Listen()
	if err != nil {
		return err
	}

	logging.Info("Starting field record server",
		zap.String("addr", addr.String()),
		zap.String("log_level", s.config.LogLevel),
		zap.String("version", version.Version),
	)

	if s.config.Advertise {
		port := addr.(*net.TCPAddr).Port
		ad, err := discovery.Advertise(port, version.Version)
		if err != nil {
			// Discovery is a convenience; the server still works without it.
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			s.ad = ad
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		s.ad.Shutdown()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	}
}

// Start starts the server and blocks until SIGINT/SIGTERM or an error
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.ad.Shutdown()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.Warn("Shutdown timeout, forcing close", zap.Error(err))
		_ = s.httpServer.Close()
	}

	logging.Sync()
	return nil
}
