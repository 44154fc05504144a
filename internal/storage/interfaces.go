package storage

import (
	"context"
	"io"

	"github.com/leolani/emissor-data/models"
)

// EmissorDataStorage collects the interaction data of the running scenario
// and persists it. At most one scenario is active at a time; signals and
// mentions arriving while no scenario is active are skipped with a warning.
type EmissorDataStorage interface {
	// StartScenario makes scenario the active one and persists it.
	// Fails when another scenario is already active.
	StartScenario(ctx context.Context, scenario models.Scenario) error

	// UpdateScenario replaces the context of the active scenario.
	// Fails when scenario is not the active one.
	UpdateScenario(ctx context.Context, scenario models.Scenario) error

	// StopScenario closes the active scenario: persists it with its end
	// timestamp, archives the interaction logs of its time window, and
	// clears the active state.
	StopScenario(ctx context.Context, scenario models.Scenario) error

	// AddSignal stores a signal of the active scenario, copying completed
	// signal payloads into scenario storage. A second signal with the same
	// id updates the stored one.
	AddSignal(ctx context.Context, signal models.Signal) error

	// AddMention attaches a mention to the signal its segment refers to.
	AddMention(ctx context.Context, mention models.Mention) error

	// AddMentions attaches each mention in order.
	AddMentions(ctx context.Context, mentions []models.Mention) error

	// GetSignal returns a stored signal of the active scenario.
	GetSignal(signalID string) (models.Signal, error)

	// CurrentScenarioID returns the active scenario's id, or empty when no
	// scenario is active.
	CurrentScenarioID() string

	// ScenarioForID returns the id of the scenario containing the given
	// element (signal, mention, or annotation container).
	ScenarioForID(ctx context.Context, elementID string) (string, error)

	// Flush persists the active scenario if it has unsaved changes.
	Flush(ctx context.Context) error
}

// SignalDataLoader fetches the raw payload of a signal from its backend
// storage URL.
type SignalDataLoader interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}
