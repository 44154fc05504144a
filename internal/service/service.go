// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

// Package service runs the emissor-data collection loop: it subscribes to
// the configured event topics and feeds scenario, signal, and annotation
// events into storage.
package service

import (
	"context"

	"github.com/leolani/emissor-data/internal/config"
	"github.com/leolani/emissor-data/internal/events"
	"github.com/leolani/emissor-data/internal/logger"
	"github.com/leolani/emissor-data/internal/storage"
)

// EmissorDataService consumes interaction events and records them through
// [storage.EmissorDataStorage].
type EmissorDataService struct {
	storage storage.EmissorDataStorage
	worker  *events.TopicWorker
	log     *logger.Logger
}

// NewEmissorDataService creates the service consuming the topics of cfg.
func NewEmissorDataService(cfg *config.ServiceConfig, store storage.EmissorDataStorage, bus *events.EventBus, log *logger.Logger) *EmissorDataService {
	if log == nil {
		log = logger.Nop()
	}

	svc := &EmissorDataService{storage: store, log: log}
	svc.worker = events.NewTopicWorker("EmissorDataService", cfg.EventTopics, bus, svc.process, log)

	return svc
}

// Start begins event processing.
func (s *EmissorDataService) Start() {
	s.worker.Start()
}

// Stop halts event processing and flushes pending scenario data.
func (s *EmissorDataService) Stop() {
	s.worker.Stop()

	if err := s.storage.Flush(context.Background()); err != nil {
		s.log.Error().Err(err).Msg("failed to flush storage on stop")
	}
}

// process dispatches one event to storage. Scenario lifecycle events are
// recognized by payload type; signal and annotation events by their
// payload fields, since each modality publishes its own event type name.
func (s *EmissorDataService) process(ctx context.Context, event events.Event) error {
	payload := event.Payload

	switch payload.Type {
	case events.TypeScenarioStarted:
		if payload.Scenario == nil {
			return nil
		}
		s.log.Debug().Str("scenario", payload.Scenario.ID).Msg("received scenario started event")
		return s.storage.StartScenario(ctx, *payload.Scenario)

	case events.TypeScenarioUpdated:
		if payload.Scenario == nil {
			return nil
		}
		s.log.Debug().Str("scenario", payload.Scenario.ID).Msg("received scenario updated event")
		return s.storage.UpdateScenario(ctx, *payload.Scenario)

	case events.TypeScenarioStopped:
		if payload.Scenario == nil {
			return nil
		}
		s.log.Debug().Str("scenario", payload.Scenario.ID).Msg("received scenario stopped event")
		return s.storage.StopScenario(ctx, *payload.Scenario)
	}

	if payload.Signal != nil {
		s.log.Debug().Str("signal", payload.Signal.ID).Msg("received signal event")
		if err := s.storage.AddSignal(ctx, *payload.Signal); err != nil {
			return err
		}
	}

	if len(payload.Mentions) > 0 {
		s.log.Debug().Str("type", payload.Type).Int("mentions", len(payload.Mentions)).Msg("received mentions event")
		if err := s.storage.AddMentions(ctx, payload.Mentions); err != nil {
			return err
		}
	}

	return nil
}
