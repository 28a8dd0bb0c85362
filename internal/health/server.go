// Package health serves the liveness probe and Prometheus metrics.
package health

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peymanh/kharjbot/internal/logger"
)

// Server is the HTTP sidecar next to the bot: GET / for platform health
// checks, GET /metrics for Prometheus.
type Server struct {
	srv *http.Server
}

// NewServer builds the health server on the given port.
func NewServer(port int) *Server {
	r := mux.NewRouter()
	r.HandleFunc("/", handleRoot).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      r,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
	}
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Bot is running!"))
}

// Start serves until Shutdown; it returns on listener failure only.
func (s *Server) Start() {
	logger.L.LogAttrs(context.Background(), slog.LevelInfo, "health server listening",
		slog.String("component", "http"),
		slog.String("event", "listen"),
		slog.String("addr", s.srv.Addr),
	)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.L.LogAttrs(context.Background(), slog.LevelError, "health server failed",
			slog.String("component", "http"),
			slog.String("event", "listen"),
			slog.String("err", err.Error()),
		)
	}
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
