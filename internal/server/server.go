package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/leolani/emissor-data/internal/config"
	"github.com/leolani/emissor-data/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates the HTTP server exposing the given router on the
// configured address.
func NewServer(router *chi.Mux, cfg *config.ServiceConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer runs the server until a termination signal arrives, then shuts
// it down gracefully.
func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v \n", err)
	}
}

// Shutdown stops the server without waiting for a signal.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func newHTTPServer(router http.Handler, cfg *config.ServiceConfig, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: router,
		},
		logger: logger,
	}
}
