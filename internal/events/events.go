// Package events provides the in-process event bus connecting the platform
// components inside one process, and the topic worker that drains it.
package events

import "github.com/leolani/emissor-data/models"

// Payload type discriminators for scenario lifecycle events. Signal and
// annotation events are recognized by their non-empty Signal and Mentions
// fields instead, since every modality publishes its own event type name.
const (
	TypeScenarioStarted = "ScenarioStarted"
	TypeScenarioUpdated = "ScenarioUpdated"
	TypeScenarioStopped = "ScenarioStopped"
)

// Payload is the content of one event.
type Payload struct {
	// Type names the event payload type.
	Type string `json:"type"`

	// Scenario accompanies scenario lifecycle events.
	Scenario *models.Scenario `json:"scenario,omitempty"`

	// Signal accompanies signal events.
	Signal *models.Signal `json:"signal,omitempty"`

	// Mentions accompany annotation events.
	Mentions []models.Mention `json:"mentions,omitempty"`
}

// Event is one message on the bus.
type Event struct {
	// Topic the event was published on.
	Topic string `json:"topic"`

	Payload Payload `json:"payload"`
}
