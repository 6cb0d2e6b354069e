package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	server *http.Server
	logger *slog.Logger
	port   int
}

func NewServer(port int, logger *slog.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return &Server{
		server: server,
		logger: logger,
		port:   port,
	}
}

func (s *Server) Start() {
	s.logger.Info("Starting metrics server",
		"port", s.port,
		"endpoint", "/metrics",
	)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Metrics server failed",
				"error", err,
			)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping metrics server")

	return s.server.Shutdown(ctx)
}
