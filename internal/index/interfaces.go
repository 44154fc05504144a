package index

import "context"

// Entry maps one element id (signal, mention, or annotation container) to
// the signal and scenario it belongs to.
type Entry struct {
	ElementID  string
	SignalID   string
	ScenarioID string
}

// ElementIndex resolves element ids to the signal and scenario that
// contain them. Signals are indexed under their own id; mentions and
// container annotations are indexed under the signal they were attached to.
type ElementIndex interface {
	// Put records the element. Re-putting an existing element id updates
	// its entry.
	Put(ctx context.Context, entry Entry) error

	// Resolve returns the entry for the element id, or ErrElementNotFound.
	Resolve(ctx context.Context, elementID string) (Entry, error)

	// Close releases the index's resources.
	Close() error
}
