// Package server exposes a registry to external tooling over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leapstack-labs/devreg/internal/catalog"
	"github.com/leapstack-labs/devreg/internal/server/notifier"
	"github.com/leapstack-labs/devreg/pkg/registry"
	"golang.org/x/sync/errgroup"
)

// Server serves the inspector API.
type Server struct {
	current     atomic.Pointer[registry.Registry]
	version     atomic.Uint64
	catalogPath string
	port        int
	watch       bool
	logger      *slog.Logger
	notifier    *notifier.Notifier
}

// Config holds configuration for the inspector server.
type Config struct {
	Registry    *registry.Registry
	CatalogPath string
	Port        int
	Watch       bool
	Logger      *slog.Logger
}

// New creates a new server instance serving cfg.Registry.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		catalogPath: cfg.CatalogPath,
		port:        cfg.Port,
		watch:       cfg.Watch && cfg.CatalogPath != "",
		logger:      logger,
		notifier:    notifier.New(),
	}
	reg := cfg.Registry
	if reg == nil {
		reg = registry.Landing()
	}
	s.current.Store(reg)
	s.version.Store(1)
	return s
}

// Registry returns the active registry.
func (s *Server) Registry() *registry.Registry {
	return s.current.Load()
}

// Version returns the number of registries activated so far.
func (s *Server) Version() uint64 {
	return s.version.Load()
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// Reload re-reads the catalog file and activates it.
// On error the active registry is left unchanged.
func (s *Server) Reload() error {
	reg, err := catalog.Load(s.catalogPath)
	if err != nil {
		return err
	}
	s.Swap(reg)
	return nil
}

// Swap activates reg and notifies listeners.
func (s *Server) Swap(reg *registry.Registry) {
	s.current.Store(reg)
	v := s.version.Add(1)
	s.logger.Info("registry activated", "version", v, "groups", len(reg.Groups()), "ids", reg.Count())
	s.notifier.Broadcast(v)
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)
	s.routes(r)
	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting inspector server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchCatalog(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down inspector server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchCatalog reloads the registry when the catalog file changes.
// The parent directory is watched so editors that replace the file by rename
// are still picked up.
func (s *Server) watchCatalog(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	target := filepath.Clean(s.catalogPath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		s.logger.Error("failed to watch catalog directory", "error", err)
		return nil
	}

	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.logger.Debug("catalog changed, reloading", "file", event.Name)
				if err := s.Reload(); err != nil {
					s.logger.Error("reload failed, keeping previous registry", "error", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}
