package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"pokesearch/internal/eventbus"
	"pokesearch/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchSucceededEvent:
		if e.RequestID == h.state.LastRequestID {
			h.state.StatusMessage = fmt.Sprintf("Found #%d %s", e.RecordID, e.Name)
		}

	case eventbus.SearchDroppedEvent:
		h.state.StatusMessage = fmt.Sprintf("Ignored stale result %d (latest %d)", e.Generation, e.Latest)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = "Settings saved"
	}

	return nil
}
