// Package search holds the lookup lifecycle: the query being edited, the
// phase of the current request, and the last record or error.
//
// The Machine is not safe for concurrent use. The UI mutates it only from
// its update loop; fetches run elsewhere and come back as a Result.
package search

import (
	"strings"

	"pokesearch/internal/domain"
)

// Status is the lifecycle phase of the current search
type Status int

const (
	Idle Status = iota
	Loading
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of the machine.
// Record and ErrorMessage are never both set.
type State struct {
	Query        string
	Status       Status
	Record       *domain.Record
	ErrorMessage string
	Generation   uint64 // latest started request
	InFlight     int    // started requests not yet resolved
}

// Request is what a trigger hands to the fetcher
type Request struct {
	Generation uint64
	Query      string // trimmed and lower-cased
}

// Result is a fetch outcome for a Request
type Result struct {
	Generation uint64
	Record     *domain.Record
	Err        error
}

// emptyResultMessage is shown if a fetch returns neither record nor error
const emptyResultMessage = "no record returned"

// Machine drives Idle -> Loading -> Succeeded/Failed
type Machine struct {
	state      State
	guardStale bool
	pending    map[uint64]struct{}
}

// Option configures a Machine
type Option func(*Machine)

// WithStaleGuard makes Resolve drop results from superseded requests.
// Without it the last result to arrive wins, even if it is older.
func WithStaleGuard(enabled bool) Option {
	return func(m *Machine) {
		m.guardStale = enabled
	}
}

// New creates an idle machine
func New(opts ...Option) *Machine {
	m := &Machine{pending: make(map[uint64]struct{})}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Normalize trims and lower-cases a raw query
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// SetQuery records the raw query text. It never changes the status.
func (m *Machine) SetQuery(text string) {
	m.state.Query = text
}

// Trigger starts a search for the current query. A blank query is ignored
// and reports false. Otherwise the machine enters Loading with record and
// error cleared before returning the request to fetch. Triggering while
// already Loading starts another, overlapping request.
func (m *Machine) Trigger() (Request, bool) {
	query := Normalize(m.state.Query)
	if query == "" {
		return Request{}, false
	}

	m.state.Generation++
	m.state.Status = Loading
	m.state.Record = nil
	m.state.ErrorMessage = ""
	m.pending[m.state.Generation] = struct{}{}
	m.state.InFlight = len(m.pending)

	return Request{Generation: m.state.Generation, Query: query}, true
}

// Resolve applies a fetch outcome and reports whether it changed the state.
// Each request resolves at most once. With the stale guard on, only the
// latest generation is applied; older results are dropped.
func (m *Machine) Resolve(res Result) bool {
	if _, ok := m.pending[res.Generation]; !ok {
		return false
	}
	delete(m.pending, res.Generation)
	m.state.InFlight = len(m.pending)

	if m.guardStale && res.Generation != m.state.Generation {
		return false
	}

	switch {
	case res.Err != nil:
		m.state.Status = Failed
		m.state.Record = nil
		m.state.ErrorMessage = res.Err.Error()
	case res.Record == nil:
		m.state.Status = Failed
		m.state.Record = nil
		m.state.ErrorMessage = emptyResultMessage
	default:
		m.state.Status = Succeeded
		m.state.Record = res.Record
		m.state.ErrorMessage = ""
	}
	return true
}

// IsStale reports whether a generation has been superseded by a newer trigger
func (m *Machine) IsStale(generation uint64) bool {
	return generation != m.state.Generation
}

// Snapshot returns a copy of the current state
func (m *Machine) Snapshot() State {
	return m.state
}

// Status returns the current lifecycle phase
func (m *Machine) Status() Status {
	return m.state.Status
}

// GuardsStale reports whether stale results are dropped
func (m *Machine) GuardsStale() bool {
	return m.guardStale
}
