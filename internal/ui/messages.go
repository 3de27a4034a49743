package ui

import (
	"time"

	"pokesearch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// pagerClosedMsg is sent when the external pager returns
type pagerClosedMsg struct {
	err error
}

// clearStatusMsg clears the status line if it still shows the same text
type clearStatusMsg struct {
	text string
}
