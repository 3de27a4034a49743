package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"pokesearch/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchStarted   = domain.EventSearchStarted
	EventSearchSucceeded = domain.EventSearchSucceeded
	EventSearchFailed    = domain.EventSearchFailed
	EventSearchDropped   = domain.EventSearchDropped
	EventError           = domain.EventError
	EventConfigLoaded    = domain.EventConfigLoaded
	EventConfigSaved     = domain.EventConfigSaved
	EventConfigChanged   = domain.EventConfigChanged
)

// Re-export domain event types
type SearchStartedEvent = domain.SearchStartedEvent
type SearchSucceededEvent = domain.SearchSucceededEvent
type SearchFailedEvent = domain.SearchFailedEvent
type SearchDroppedEvent = domain.SearchDroppedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type ConfigChangedEvent = domain.ConfigChangedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	running   sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus and starts its dispatcher
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers of its type.
// Events are dropped rather than blocking the UI when the queue is full.
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event bus channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops accepting events, delivers whatever is still queued and
// waits for running handlers to return.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
	b.running.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.running.Add(1)
		// Handlers run on their own goroutine so a slow one can't stall the queue
		go func(h EventHandler, eventType EventType) {
			defer b.running.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panic",
						zap.String("type", string(eventType)),
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()))
				}
			}()
			h(event)
		}(s.handler, event.Type())
	}
}
