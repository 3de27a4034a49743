package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchSucceeded EventType = "SearchSucceeded"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchDropped   EventType = "SearchDropped"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a non-blank query enters Loading
type SearchStartedEvent struct {
	RequestID  string
	Generation uint64
	Query      string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchSucceededEvent is emitted when a fetched record is applied
type SearchSucceededEvent struct {
	RequestID  string
	Generation uint64
	Query      string
	RecordID   int
	Name       string
}

func (e SearchSucceededEvent) Type() EventType { return EventSearchSucceeded }

// SearchFailedEvent is emitted when a failed lookup is applied
type SearchFailedEvent struct {
	RequestID  string
	Generation uint64
	Query      string
	Message    string
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDroppedEvent is emitted when a stale result is discarded
type SearchDroppedEvent struct {
	RequestID  string
	Generation uint64
	Latest     uint64
}

func (e SearchDroppedEvent) Type() EventType { return EventSearchDropped }

// ErrorEvent is emitted when an infrastructure error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a UI setting changed and should be persisted.
// Revision increases with every change so handlers can tell which is newest.
type ConfigChangedEvent struct {
	Revision   uint64
	Background bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
