package types

// Trigger sources
const (
	SourceEnter  = "enter"
	SourceButton = "button"
)

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateQueryAction struct {
	Text string
}

func (a UpdateQueryAction) Type() string { return "update_query" }

// TriggerSearchAction starts a lookup for the current query
type TriggerSearchAction struct {
	Source string // SourceEnter or SourceButton
}

func (a TriggerSearchAction) Type() string { return "trigger_search" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

type ToggleBackgroundAction struct{}

func (a ToggleBackgroundAction) Type() string { return "toggle_background" }

// OpenRawAction shows the last response body in the pager
type OpenRawAction struct{}

func (a OpenRawAction) Type() string { return "open_raw" }

// StatusAction sets the status line
type StatusAction struct {
	Message string
}

func (a StatusAction) Type() string { return "status" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
