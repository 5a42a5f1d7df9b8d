// Package server provides the HTTP server for the Mergington High School
// extracurricular activities service.
//
// The server exposes a REST API over the activity catalog, serving the
// student-facing web UI and the signup endpoints it calls.
//
// # Endpoints
//
//   - GET / - Redirects to the web UI at /static/index.html
//   - GET /static/... - Web UI assets
//   - GET /health - Simple health check, returns "ok"
//   - GET /activities - Full activity catalog as JSON
//   - POST /activities/{activity}/signup?email=E - Sign a student up
//   - DELETE /activities/{activity}/unregister?email=E - Remove a student
//   - GET /metrics - Prometheus metrics (scrape mode only)
//
// # Architecture
//
// The activity store is owned by the caller and injected at construction, so
// tests can run each case against a fresh catalog. The server adds the
// operational pieces around it: metrics in scrape or push mode, optional
// cron-scheduled roster snapshots, and optional TLS with certificate reload.
//
// # Example
//
//	store := activities.NewMemoryStore(seed)
//	srv, err := server.New(cfg, logger, store)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server

import (
	"context"
	"crypto/tls"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mergington/schoolactivities/activities"
	"github.com/mergington/schoolactivities/config"
	"github.com/mergington/schoolactivities/metrics"
	"github.com/mergington/schoolactivities/server/cron"
	"github.com/mergington/schoolactivities/server/handlers"
)

//go:embed static
var staticFiles embed.FS

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Server is the HTTP server for the activities service.
type Server struct {
	cfg    config.Config
	logger *slog.Logger
	store  activities.Store

	recorder    *metrics.Recorder
	scrape      *metrics.ScrapeRegistry // nil in push mode
	snapshotter *activities.Snapshotter // nil when snapshots are disabled
	cronTrigger *cron.CronTrigger       // nil without a snapshot schedule
	httpServer  *http.Server
}

// New creates a new Server serving the given store.
// Metrics mode, snapshots, and TLS are driven by the config.
func New(cfg config.Config, logger *slog.Logger, store activities.Store) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		store:  store,
	}

	if cfg.Monitoring.VictoriaMetricsURL != "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("getting hostname: %w", err)
		}
		reg := metrics.NewPushRegistry(metrics.PushConfig{
			URL:      cfg.Monitoring.VictoriaMetricsURL,
			Prefix:   cfg.Monitoring.MetricsPrefix,
			Job:      cfg.Monitoring.JobName,
			Instance: hostname,
		})
		recorder, err := metrics.NewRecorder(reg)
		if err != nil {
			return nil, fmt.Errorf("creating push metrics recorder: %w", err)
		}
		s.recorder = recorder
	} else {
		scrape, err := metrics.NewScrapeRegistry()
		if err != nil {
			return nil, fmt.Errorf("creating scrape registry: %w", err)
		}
		recorder, err := metrics.NewRecorder(scrape)
		if err != nil {
			return nil, fmt.Errorf("creating metrics recorder: %w", err)
		}
		s.scrape = scrape
		s.recorder = recorder
	}

	if cfg.Snapshot.Dir != "" {
		snap, err := activities.NewSnapshotter(cfg.Snapshot.Dir, cfg.Snapshot.MaxCount, store, logger)
		if err != nil {
			return nil, fmt.Errorf("creating snapshotter: %w", err)
		}
		s.snapshotter = snap

		if cfg.Snapshot.Schedule != "" {
			trigger, err := cron.NewCronTrigger(cfg.Snapshot.Schedule, snap, logger)
			if err != nil {
				return nil, fmt.Errorf("creating snapshot trigger: %w", err)
			}
			s.cronTrigger = trigger
		}
	}

	return s, nil
}

// Logger returns the server's logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// Handler returns the server's HTTP handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.registerRoutes(mux)
	return mux
}

// Run starts the HTTP server and blocks until the context is cancelled.
// It performs a graceful shutdown when the context is done.
// If a snapshot schedule is configured, the cron trigger is started too.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.cfg.Listener.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
	}

	useTLS := s.cfg.Listener.CertFile != ""
	if useTLS {
		loader, err := NewCertLoader(s.cfg.Listener.CertFile, s.cfg.Listener.KeyFile, s.logger)
		if err != nil {
			return fmt.Errorf("loading tls certificate: %w", err)
		}
		s.httpServer.TLSConfig = &tls.Config{
			GetCertificate: loader.GetCertificate,
		}
	}

	if s.cronTrigger != nil {
		s.logger.Info("starting snapshot trigger",
			"next_run", s.cronTrigger.NextRun(),
		)
		s.cronTrigger.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server",
			"addr", s.cfg.Listener.Addr,
			"tls", useTLS,
		)
		var err error
		if useTLS {
			err = s.httpServer.ListenAndServeTLS("", "")
		} else {
			err = s.httpServer.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		if s.snapshotter != nil {
			// Final snapshot so a restart can pick up the latest roster
			if err := s.snapshotter.Run(); err != nil {
				s.logger.Warn("final snapshot failed", "error", err)
			}
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	signupHandler := handlers.NewSignupHandler(s.logger, s.store, s.recorder)
	unregisterHandler := handlers.NewUnregisterHandler(s.logger, s.store, s.recorder)

	// API endpoints
	mux.HandleFunc("GET /health", handlers.HandleHealth)
	mux.Handle("GET /activities", handlers.NewActivitiesHandler(s.store))
	mux.Handle("POST /activities/{activity}/signup", signupHandler)
	mux.Handle("DELETE /activities/{activity}/unregister", unregisterHandler)

	if s.scrape != nil {
		mux.Handle("GET /metrics", s.scrape.Handler())
	}

	// Static files (web UI)
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		s.logger.Error("failed to create static file system", "error", err)
		return
	}
	// http.FileServer answers /index.html with a canonicalizing redirect,
	// so the root redirect target is served explicitly.
	mux.HandleFunc("GET /static/index.html", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, staticFS, "index.html")
	})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	mux.HandleFunc("GET /{$}", handlers.HandleRoot)
}
