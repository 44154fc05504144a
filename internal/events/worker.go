package events

import (
	"context"
	"sync"

	"github.com/leolani/emissor-data/internal/logger"
)

// Processor handles one event. Errors are logged by the worker and do not
// stop it.
type Processor func(ctx context.Context, event Event) error

// TopicWorker drains the events of a set of topics into a processor,
// strictly sequentially: event handling order matters for scenario
// lifecycle consistency.
type TopicWorker struct {
	name      string
	topics    []string
	bus       *EventBus
	processor Processor
	log       *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTopicWorker creates a worker consuming the given topics. The worker
// does not run until Start is called.
func NewTopicWorker(name string, topics []string, bus *EventBus, processor Processor, log *logger.Logger) *TopicWorker {
	if log == nil {
		log = logger.Nop()
	}

	return &TopicWorker{
		name:      name,
		topics:    topics,
		bus:       bus,
		processor: processor,
		log:       log,
	}
}

// Start subscribes the worker and begins processing in a background
// goroutine.
func (w *TopicWorker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	events := w.bus.Subscribe(w.topics...)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx, events)
	}()

	w.log.Info().Str("worker", w.name).Strs("topics", w.topics).Msg("topic worker started")
}

// Stop cancels processing and waits for the worker goroutine to finish.
func (w *TopicWorker) Stop() {
	if w.cancel == nil {
		return
	}

	w.cancel()
	w.wg.Wait()
	w.cancel = nil

	w.log.Info().Str("worker", w.name).Msg("topic worker stopped")
}

func (w *TopicWorker) run(ctx context.Context, events <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := w.processor(ctx, event); err != nil {
				w.log.Error().Err(err).Str("topic", event.Topic).Str("type", event.Payload.Type).
					Msg("event processing failed")
			}
		}
	}
}
