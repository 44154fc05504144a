package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects processed events behind a mutex so the worker goroutine
// and the test can both touch them.
type recorder struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (r *recorder) process(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
	return r.err
}

func (r *recorder) recorded() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func waitFor(t *testing.T, condition func() bool) {
	t.Helper()

	require.Eventually(t, condition, time.Second, 5*time.Millisecond)
}

// TestTopicWorker_ProcessesPublishedEvents verifies the subscribe/process
// loop end to end.
func TestTopicWorker_ProcessesPublishedEvents(t *testing.T) {
	bus := NewEventBus(nil)
	defer bus.Close()
	rec := &recorder{}

	worker := NewTopicWorker("test", []string{"cltl.topic.scenario"}, bus, rec.process, nil)
	worker.Start()
	defer worker.Stop()

	bus.Publish("cltl.topic.scenario", Payload{Type: TypeScenarioStarted})
	bus.Publish("cltl.topic.scenario", Payload{Type: TypeScenarioStopped})

	waitFor(t, waitForCount(rec, 2))

	events := rec.recorded()
	assert.Equal(t, TypeScenarioStarted, events[0].Payload.Type)
	assert.Equal(t, TypeScenarioStopped, events[1].Payload.Type)
}

func waitForCount(rec *recorder, n int) func() bool {
	return func() bool { return len(rec.recorded()) >= n }
}

// TestTopicWorker_ProcessorErrorDoesNotStopWorker verifies that a failing
// processor keeps receiving subsequent events.
func TestTopicWorker_ProcessorErrorDoesNotStopWorker(t *testing.T) {
	bus := NewEventBus(nil)
	defer bus.Close()
	rec := &recorder{err: errors.New("handler failed")}

	worker := NewTopicWorker("test", []string{"cltl.topic.scenario"}, bus, rec.process, nil)
	worker.Start()
	defer worker.Stop()

	bus.Publish("cltl.topic.scenario", Payload{Type: TypeScenarioStarted})
	bus.Publish("cltl.topic.scenario", Payload{Type: TypeScenarioStopped})

	waitFor(t, waitForCount(rec, 2))
}

// TestTopicWorker_StopIsIdempotent verifies that Stop waits for the worker
// and that calling it again (or before Start) does nothing.
func TestTopicWorker_StopIsIdempotent(t *testing.T) {
	bus := NewEventBus(nil)
	defer bus.Close()
	rec := &recorder{}

	worker := NewTopicWorker("test", []string{"cltl.topic.scenario"}, bus, rec.process, nil)

	assert.NotPanics(t, func() { worker.Stop() })

	worker.Start()
	worker.Stop()

	assert.NotPanics(t, func() { worker.Stop() })
}

// TestTopicWorker_StopsWhenBusCloses verifies the worker drains out after
// the bus shuts its subscription channel.
func TestTopicWorker_StopsWhenBusCloses(t *testing.T) {
	bus := NewEventBus(nil)
	rec := &recorder{}

	worker := NewTopicWorker("test", []string{"cltl.topic.scenario"}, bus, rec.process, nil)
	worker.Start()

	bus.Close()
	worker.Stop()

	assert.Empty(t, rec.recorded())
}
