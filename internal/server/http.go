package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/leolani/emissor-data/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
