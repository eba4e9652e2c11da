package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fly-the-w/internal/config"
	"fly-the-w/internal/fanout"
	"fly-the-w/internal/plugin"
)

const (
	readTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// httpServer abstracts net/http.Server for tests.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type netHTTPServer struct {
	srv *http.Server
}

func (n netHTTPServer) ListenAndServe() error             { return n.srv.ListenAndServe() }
func (n netHTTPServer) Shutdown(ctx context.Context) error { return n.srv.Shutdown(ctx) }

func buildMetricsServer(cfg config.Config, promHandler http.Handler, p *plugin.Plugin) httpServer {
	mux := http.NewServeMux()
	if promHandler != nil {
		mux.Handle("/metrics", promHandler)
	}
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/status", statusHandler(p))

	return netHTTPServer{srv: &http.Server{
		Addr:         ":" + cfg.Metrics.Port,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
}

func buildFanoutServer(cfg config.Config, fan *fanout.Server) httpServer {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", fan.HandleWS)

	return netHTTPServer{srv: &http.Server{
		Addr:        ":" + cfg.Fanout.Port,
		Handler:     mux,
		ReadTimeout: readTimeout,
		IdleTimeout: idleTimeout,
	}}
}

// statusHandler serves the plugin's diagnostic snapshot as JSON.
func statusHandler(p *plugin.Plugin) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(p.Info(time.Now())); err != nil {
			http.Error(w, "encode status", http.StatusInternalServerError)
		}
	}
}

func (s *Server) startServers(stop context.CancelFunc) {
	if s.metricsServer != nil {
		go func() {
			if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				stop()
			}
		}()
	}
	if s.fanoutServer != nil {
		go func() {
			if err := s.fanoutServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				stop()
			}
		}()
	}
}
