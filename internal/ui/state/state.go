package state

import "time"

// Focus identifies the widget receiving keys
type Focus int

const (
	FocusQuery Focus = iota
	FocusButton
)

// AppState contains UI-only state. Search lifecycle state lives in the
// search machine.
type AppState struct {
	Focus Focus

	// Popups
	ShowHelp         bool
	HelpScrollOffset int // scroll offset for help popup

	// Background
	Background bool
	StartedAt  time.Time // animation epoch

	// Status line
	StatusMessage string
	LastRequestID string // correlation id of the latest started lookup
	LastQuery     string // normalized query of the latest started lookup

	// Terminal size
	Width  int
	Height int
}

// NewAppState creates a new application state
func NewAppState(background bool) *AppState {
	return &AppState{
		Focus:      FocusQuery,
		Background: background,
		StartedAt:  time.Now(),
	}
}

// Elapsed returns seconds since the animation epoch
func (s *AppState) Elapsed(now time.Time) float64 {
	if s.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(s.StartedAt).Seconds()
}

// ScrollHelp moves the help popup, never above the first line
func (s *AppState) ScrollHelp(delta, maxOffset int) {
	s.HelpScrollOffset += delta
	if s.HelpScrollOffset > maxOffset {
		s.HelpScrollOffset = maxOffset
	}
	if s.HelpScrollOffset < 0 {
		s.HelpScrollOffset = 0
	}
}

// ToggleHelp shows or hides the help popup and resets its scroll
func (s *AppState) ToggleHelp() {
	s.ShowHelp = !s.ShowHelp
	s.HelpScrollOffset = 0
}

// ToggleBackground flips the animated background and returns the new value
func (s *AppState) ToggleBackground() bool {
	s.Background = !s.Background
	return s.Background
}
