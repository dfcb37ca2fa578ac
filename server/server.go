// Package server exposes the love counter, the diary and the YouTube proxy
// over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ourlove/logging"
	"ourlove/lovetime"
	"ourlove/storage"
	"ourlove/youtube"
)

// Config holds configuration for the HTTP server.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Version         string

	SiteName    string
	PartnerName string
	Tagline     string
	RegionCode  string
}

// Server is the ourlove HTTP API.
type Server struct {
	config  Config
	mux     *http.ServeMux
	handler http.Handler
	server  *http.Server

	calc    *lovetime.Calculator
	diary   *storage.Diary
	youtube *youtube.Client
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a server over the given collaborators. A nil logger discards
// output.
func New(cfg Config, calc *lovetime.Calculator, diary *storage.Diary, yt *youtube.Client, logger *zap.Logger) (*Server, error) {
	if calc == nil {
		return nil, errors.New("server: calculator is required")
	}
	if diary == nil {
		return nil, errors.New("server: diary is required")
	}
	if yt == nil {
		yt = youtube.NewClient(youtube.Config{Logger: logger})
	}
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg.Addr == "" {
		cfg.Addr = ":5000"
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		config:  cfg,
		mux:     http.NewServeMux(),
		calc:    calc,
		diary:   diary,
		youtube: yt,
		logger:  logger,
		now:     time.Now,
	}

	s.registerRoutes()
	s.handler = s.recoverPanics(s.logRequests(cors(s.mux)))

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// registerRoutes sets up all HTTP routes.
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api", s.handleRoot)
	s.mux.HandleFunc("GET /api/health", s.handleHealth)
	s.mux.HandleFunc("GET /api/love", s.handleLove)

	// YouTube proxy
	s.mux.HandleFunc("GET /api/youtube/search", s.handleYouTubeSearch)
	s.mux.HandleFunc("GET /api/youtube/video/{videoId}", s.handleYouTubeVideo)
	s.mux.HandleFunc("GET /api/youtube/trending", s.handleYouTubeTrending)

	// Diary
	s.mux.HandleFunc("GET /api/diary", s.handleDiaryList)
	s.mux.HandleFunc("POST /api/diary", s.handleDiaryCreate)
	s.mux.HandleFunc("GET /api/diary/export", s.handleDiaryExport)
	s.mux.HandleFunc("POST /api/diary/import", s.handleDiaryImport)
	s.mux.HandleFunc("GET /api/diary/{id}", s.handleDiaryGet)
	s.mux.HandleFunc("PUT /api/diary/{id}", s.handleDiaryUpdate)
	s.mux.HandleFunc("DELETE /api/diary/{id}", s.handleDiaryDelete)
}

// Handler returns the fully wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.config.Addr
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("diary", s.diary.Path()))
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down server")
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// setClock overrides the wall clock used for export file names.
func (s *Server) setClock(now func() time.Time) {
	s.now = now
}

// handleRoot answers the liveness banner.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Gift API is running!"})
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	version := s.config.Version
	if version == "" {
		version = "dev"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": version,
		"youtube": s.youtube.HasAPIKey(),
	})
}
