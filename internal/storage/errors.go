package storage

import "errors"

var (
	// ErrScenarioAlreadyStarted indicates that StartScenario was called
	// while another scenario is active.
	ErrScenarioAlreadyStarted = errors.New("a scenario is already started")

	// ErrScenarioNotStarted indicates that an operation referenced a
	// scenario that is not the active one.
	ErrScenarioNotStarted = errors.New("scenario is not started")

	// ErrScenarioMismatch indicates that a signal referenced a scenario
	// other than the active one.
	ErrScenarioMismatch = errors.New("signal does not belong to the current scenario")

	// ErrContainerNotFound indicates that a mention's segment referenced a
	// container unknown to the active scenario and the element index.
	ErrContainerNotFound = errors.New("mentioned container not found")

	// ErrSignalNotFound indicates that no signal with the requested id is
	// stored for the active scenario.
	ErrSignalNotFound = errors.New("signal not found")

	// ErrScenarioNotFound indicates that no scenario with the requested id
	// exists in storage.
	ErrScenarioNotFound = errors.New("scenario not found")
)
