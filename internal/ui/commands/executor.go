package commands

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pokesearch/internal/domain"
	"pokesearch/internal/eventbus"
	"pokesearch/internal/pokeapi"
	"pokesearch/internal/search"
	"pokesearch/internal/ui/state"
)

// SearchResultMsg carries a finished fetch back into the update loop
type SearchResultMsg struct {
	Request   search.Request
	RequestID string
	Record    *domain.Record
	Err       error
}

// Executor handles command execution
type Executor struct {
	ctx     context.Context
	state   *state.AppState
	machine *search.Machine
	fetcher pokeapi.Fetcher
	bus     eventbus.EventBus
	logger  *zap.Logger
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, appState *state.AppState, machine *search.Machine, fetcher pokeapi.Fetcher, bus eventbus.EventBus, logger *zap.Logger) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		ctx:     ctx,
		state:   appState,
		machine: machine,
		fetcher: fetcher,
		bus:     bus,
		logger:  logger,
	}
}

// ExecuteSearch triggers the machine and returns the fetch command.
// A blank query returns nil and leaves the machine untouched.
func (e *Executor) ExecuteSearch(source string) tea.Cmd {
	req, ok := e.machine.Trigger()
	if !ok {
		return nil
	}

	requestID := uuid.NewString()
	if e.state != nil {
		e.state.LastRequestID = requestID
		e.state.LastQuery = req.Query
		e.state.StatusMessage = ""
	}
	e.logger.Debug("search triggered",
		zap.String("request_id", requestID),
		zap.Uint64("generation", req.Generation),
		zap.String("query", req.Query),
		zap.String("source", source))
	e.publish(eventbus.SearchStartedEvent{
		RequestID:  requestID,
		Generation: req.Generation,
		Query:      req.Query,
	})

	ctx := e.ctx
	fetcher := e.fetcher
	return func() tea.Msg {
		rec, err := fetcher.Fetch(ctx, req.Query)
		return SearchResultMsg{Request: req, RequestID: requestID, Record: rec, Err: err}
	}
}

// ApplyResult resolves the machine with a finished fetch and publishes
// the outcome. It reports whether the visible state changed.
func (e *Executor) ApplyResult(msg SearchResultMsg) bool {
	applied := e.machine.Resolve(search.Result{
		Generation: msg.Request.Generation,
		Record:     msg.Record,
		Err:        displayErr(msg.Err),
	})
	if !applied {
		snap := e.machine.Snapshot()
		e.logger.Debug("search result dropped",
			zap.String("request_id", msg.RequestID),
			zap.Uint64("generation", msg.Request.Generation),
			zap.Uint64("latest", snap.Generation),
			zap.Bool("stale_guard", e.machine.GuardsStale()))
		e.publish(eventbus.SearchDroppedEvent{
			RequestID:  msg.RequestID,
			Generation: msg.Request.Generation,
			Latest:     snap.Generation,
		})
		return false
	}

	if e.machine.IsStale(msg.Request.Generation) {
		e.logger.Debug("older result replaced the current one",
			zap.String("request_id", msg.RequestID),
			zap.Uint64("generation", msg.Request.Generation))
	}

	snap := e.machine.Snapshot()
	switch snap.Status {
	case search.Succeeded:
		e.publish(eventbus.SearchSucceededEvent{
			RequestID:  msg.RequestID,
			Generation: msg.Request.Generation,
			Query:      msg.Request.Query,
			RecordID:   snap.Record.ID,
			Name:       snap.Record.Name,
		})
	case search.Failed:
		e.publish(eventbus.SearchFailedEvent{
			RequestID:  msg.RequestID,
			Generation: msg.Request.Generation,
			Query:      msg.Request.Query,
			Message:    snap.ErrorMessage,
			Err:        msg.Err,
		})
	}
	return true
}

// RunSync performs one complete lookup on the calling goroutine and
// returns the resulting snapshot.
func (e *Executor) RunSync(query string) (search.State, error) {
	e.machine.SetQuery(query)
	cmd := e.ExecuteSearch("lookup")
	if cmd == nil {
		return e.machine.Snapshot(), ErrBlankQuery
	}
	msg, ok := cmd().(SearchResultMsg)
	if !ok {
		return e.machine.Snapshot(), errors.New("unexpected fetch result")
	}
	e.ApplyResult(msg)
	return e.machine.Snapshot(), nil
}

// displayError carries the user-facing text of a fetch failure into the
// machine while keeping the original error reachable.
type displayError struct {
	msg string
	err error
}

func (d *displayError) Error() string { return d.msg }

func (d *displayError) Unwrap() error { return d.err }

func displayErr(err error) error {
	if err == nil {
		return nil
	}
	return &displayError{msg: pokeapi.DisplayMessage(err), err: err}
}

// ErrBlankQuery is returned by RunSync for an empty query
var ErrBlankQuery = errors.New("query is blank")

func (e *Executor) publish(event eventbus.DomainEvent) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}
