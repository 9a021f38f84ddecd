package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/lksh336/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(cfg config.HTTP, backdoor Backdoor, device DeviceState, gatherer prometheus.Gatherer) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(backdoor, device, gatherer),
		},
	}
}

// NewRouter mounts the backdoor and device routes under /api/v1 next to
// /metrics and /health.
func NewRouter(backdoor Backdoor, device DeviceState, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	bh := NewBackdoorHandler(backdoor)
	dh := NewDeviceHandler(device)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/backdoor", bh.ListMethods)
		r.Post("/backdoor/{method}", bh.Call)
		r.Get("/device", dh.GetState)
		r.Put("/device/connected", dh.SetConnected)
	})

	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/health", health)

	return r
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
