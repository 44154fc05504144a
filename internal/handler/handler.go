// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

// Package handler exposes the REST surface of the emissor-data service:
// scenario id lookups used by the other platform components.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/leolani/emissor-data/internal/index"
	"github.com/leolani/emissor-data/internal/logger"
	"github.com/leolani/emissor-data/internal/storage"
)

// Handler serves scenario id lookups against the running storage.
type Handler struct {
	storage storage.EmissorDataStorage
	timeout time.Duration
	log     *logger.Logger
}

// NewHandler creates the REST handler. timeout bounds each request.
func NewHandler(store storage.EmissorDataStorage, timeout time.Duration, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}

	return &Handler{storage: store, timeout: timeout, log: log}
}

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(h.timeout))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(noCache)

	router.Get("/emissor/scenario/current/id", h.currentScenarioID)
	router.Get("/emissor/{id}/scenario/id", h.scenarioForID)

	return router
}

// noCache disables response caching: scenario state changes with every
// event, so clients must always revalidate.
func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) currentScenarioID(w http.ResponseWriter, r *http.Request) {
	id := h.storage.CurrentScenarioID()
	if id == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	h.writeText(w, id)
}

func (h *Handler) scenarioForID(w http.ResponseWriter, r *http.Request) {
	elementID := chi.URLParam(r, "id")

	scenarioID, err := h.storage.ScenarioForID(r.Context(), elementID)
	if err != nil {
		if errors.Is(err, index.ErrElementNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		h.log.Error().Err(err).Str("element", elementID).Msg("scenario lookup failed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.writeText(w, scenarioID)
}

func (h *Handler) writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(body)); err != nil {
		h.log.Error().Err(err).Msg("failed to write response")
	}
}
