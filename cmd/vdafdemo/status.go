package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/atomic"
)

// statusServer exposes liveness/readiness endpoints for the demo aggregator
// process while it runs a batch.
type statusServer struct {
	log     *slog.Logger
	isReady atomic.Bool
	srv     *http.Server
}

func newStatusServer(log *slog.Logger, addr string) *statusServer {
	s := &statusServer{log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET"},
	}))

	r.Get("/livez", s.handleLivez)
	r.Get("/readyz", s.handleReadyz)

	s.srv = &http.Server{Addr: addr, Handler: r}
	return s
}

func (s *statusServer) handleLivez(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"alive"}`))
}

func (s *statusServer) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if !s.isReady.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}

func (s *statusServer) runInBackground() {
	go func() {
		s.log.Info("starting status server", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("status server failed", "err", err)
		}
	}()
}
