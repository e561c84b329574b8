// Package api exposes the Latin analyzer as a JSON REST API.
//
// Endpoints:
//
//	GET  /            service info
//	GET  /health      readiness probe
//	POST /analyze     body: {"text":"...", "include_morphology":true, "include_dependencies":false}
//	GET  /lemmatize?form=<word>[&sentence_start=true]
//	GET  /inflection?lemma=<key>
//	GET  /languages
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/cours-de-latin/latin-analyzer/internal/analyzer"
)

// Version is the service version reported by / and /health.
const Version = "1.0.0"

// Server serves the analyzer over HTTP.
type Server struct {
	addr        string
	svc         *analyzer.Service
	corsOrigins []string
	log         *zap.Logger
}

// NewServer builds a Server listening on addr, allowing CORS requests from
// corsOrigins.
func NewServer(addr string, svc *analyzer.Service, corsOrigins []string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{addr: addr, svc: svc, corsOrigins: corsOrigins, log: log}
}

// Handler returns the full handler chain: routes, request logging and CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/lemmatize", s.handleLemmatize)
	mux.HandleFunc("/inflection", s.handleInflection)
	mux.HandleFunc("/languages", s.handleLanguages)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(s.requestLog(mux))
}

// Start runs the HTTP server until ctx is cancelled or the listener fails.
// Cancellation triggers a graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.log.Info("listening", zap.String("addr", s.addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info("server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}
