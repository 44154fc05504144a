// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

// Package client provides HTTP access to emissor-data instances and to the
// backend storage service holding raw signal payloads.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/leolani/emissor-data/internal/logger"
)

// ErrScenarioLookup indicates that a scenario id lookup failed for a reason
// other than the element being unknown.
var ErrScenarioLookup = errors.New("could not retrieve scenario id")

// EmissorDataClient queries the REST surface of a running emissor-data
// service.
type EmissorDataClient struct {
	client *resty.Client
	log    *logger.Logger
}

// NewEmissorDataClient creates a client for the service at baseURL
// (e.g. "http://localhost:8087/emissor").
func NewEmissorDataClient(baseURL string, timeout time.Duration, log *logger.Logger) *EmissorDataClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &EmissorDataClient{client: cli, log: log}
}

// CurrentScenarioID returns the id of the currently active scenario, or
// empty when no scenario is active.
func (c *EmissorDataClient) CurrentScenarioID(ctx context.Context) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/scenario/current/id")
	if err != nil {
		return "", fmt.Errorf("current scenario request: %w", err)
	}

	switch {
	case resp.IsSuccess():
		return string(resp.Body()), nil
	case resp.StatusCode() == http.StatusNotFound:
		return "", nil
	default:
		return "", fmt.Errorf("%w: (%d) %s", ErrScenarioLookup, resp.StatusCode(), resp.Body())
	}
}

// ScenarioForID returns the id of the scenario containing the given
// element. When the element is unknown and fallback is set, the current
// scenario id is returned instead.
func (c *EmissorDataClient) ScenarioForID(ctx context.Context, elementID string, fallback bool) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/" + elementID + "/scenario/id")
	if err != nil {
		return "", fmt.Errorf("scenario lookup request: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		if !fallback {
			return "", fmt.Errorf("%w: no such id %q", ErrScenarioLookup, elementID)
		}

		c.log.Warn().Str("element", elementID).Msg("could not find scenario for id, fall back to current")
		return c.CurrentScenarioID(ctx)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: (%d) %s", ErrScenarioLookup, resp.StatusCode(), resp.Body())
	}

	return string(resp.Body()), nil
}
