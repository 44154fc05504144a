// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package models

import "github.com/google/uuid"

// Scenario is the top-level container of one interaction: everything the
// platform records between a start and a stop event. Signals of all
// modalities and their mentions are attached to exactly one scenario.
type Scenario struct {
	// ID is the unique identifier of the scenario. It doubles as the
	// directory name under which the scenario is persisted.
	ID string `json:"id"`

	// Ruler bounds the scenario in time. Ruler.ContainerID equals ID.
	Ruler TemporalRuler `json:"ruler"`

	// Context carries free-form scenario context supplied by the
	// application, opaque to this service.
	Context string `json:"context"`

	// Signals maps each modality to the relative path of its signal file
	// inside the scenario directory.
	Signals map[Modality]string `json:"signals"`
}

// NewScenario creates a scenario starting at the given timestamp. An empty
// id is replaced by a fresh UUID.
func NewScenario(id string, start int64, end *int64, context string, signals map[Modality]string) Scenario {
	if id == "" {
		id = uuid.NewString()
	}

	return Scenario{
		ID:      id,
		Ruler:   TemporalRuler{ContainerID: id, Start: start, End: end},
		Context: context,
		Signals: signals,
	}
}
