package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokesearch/internal/domain"
)

var errNotFound = errors.New("Pokemon not found!")

func pikachu() *domain.Record {
	return &domain.Record{ID: 25, Name: "pikachu"}
}

func assertExclusive(t *testing.T, s State) {
	t.Helper()
	assert.False(t, s.Record != nil && s.ErrorMessage != "", "record and error both set")
	if s.Status == Loading {
		assert.Nil(t, s.Record)
		assert.Empty(t, s.ErrorMessage)
	}
}

func TestTriggerBlankQueryIsNoop(t *testing.T) {
	for _, q := range []string{"", " ", "\t", "  \n  "} {
		m := New()
		m.SetQuery(q)

		req, ok := m.Trigger()
		assert.False(t, ok, "query %q", q)
		assert.Equal(t, Request{}, req)
		assert.Equal(t, Idle, m.Status())
		assert.Zero(t, m.Snapshot().Generation)
	}
}

func TestTriggerBlankQueryKeepsPreviousResult(t *testing.T) {
	m := New()
	m.SetQuery("pikachu")
	req, _ := m.Trigger()
	m.Resolve(Result{Generation: req.Generation, Record: pikachu()})

	m.SetQuery("   ")
	_, ok := m.Trigger()
	require.False(t, ok)

	s := m.Snapshot()
	assert.Equal(t, Succeeded, s.Status)
	assert.Equal(t, 25, s.Record.ID)
}

func TestTriggerNormalizesQuery(t *testing.T) {
	m := New()
	m.SetQuery("  PikaChu ")

	req, ok := m.Trigger()
	require.True(t, ok)
	assert.Equal(t, "pikachu", req.Query)
	assert.Equal(t, uint64(1), req.Generation)
	// raw text stays as typed
	assert.Equal(t, "  PikaChu ", m.Snapshot().Query)
}

func TestTriggerClearsPreviousResultSynchronously(t *testing.T) {
	m := New()
	m.SetQuery("pikachu")
	req, _ := m.Trigger()
	m.Resolve(Result{Generation: req.Generation, Record: pikachu()})
	require.Equal(t, Succeeded, m.Status())

	m.SetQuery("notapokemon123")
	_, ok := m.Trigger()
	require.True(t, ok)

	s := m.Snapshot()
	assert.Equal(t, Loading, s.Status)
	assert.Nil(t, s.Record)
	assert.Empty(t, s.ErrorMessage)
	assert.Equal(t, 1, s.InFlight)
}

func TestTriggerClearsPreviousError(t *testing.T) {
	m := New()
	m.SetQuery("missingno")
	req, _ := m.Trigger()
	m.Resolve(Result{Generation: req.Generation, Err: errNotFound})
	require.Equal(t, Failed, m.Status())

	m.SetQuery("pikachu")
	m.Trigger()
	assertExclusive(t, m.Snapshot())
	assert.Empty(t, m.Snapshot().ErrorMessage)
}

func TestResolveSuccess(t *testing.T) {
	m := New()
	m.SetQuery("pikachu")
	req, _ := m.Trigger()

	applied := m.Resolve(Result{Generation: req.Generation, Record: pikachu()})
	require.True(t, applied)

	s := m.Snapshot()
	assert.Equal(t, Succeeded, s.Status)
	assert.Equal(t, 25, s.Record.ID)
	assert.Equal(t, "pikachu", s.Record.Name)
	assert.Empty(t, s.ErrorMessage)
	assert.Zero(t, s.InFlight)
}

func TestResolveFailure(t *testing.T) {
	m := New()
	m.SetQuery("notapokemon123")
	req, _ := m.Trigger()

	m.Resolve(Result{Generation: req.Generation, Err: errNotFound})

	s := m.Snapshot()
	assert.Equal(t, Failed, s.Status)
	assert.Equal(t, "Pokemon not found!", s.ErrorMessage)
	assert.Nil(t, s.Record)
}

func TestResolveEmptyResultFails(t *testing.T) {
	m := New()
	m.SetQuery("pikachu")
	req, _ := m.Trigger()

	m.Resolve(Result{Generation: req.Generation})
	assert.Equal(t, Failed, m.Status())
	assert.Equal(t, emptyResultMessage, m.Snapshot().ErrorMessage)
}

func TestResolveUnknownOrRepeatedGenerationIgnored(t *testing.T) {
	m := New()
	assert.False(t, m.Resolve(Result{Generation: 7, Record: pikachu()}))
	assert.Equal(t, Idle, m.Status())

	m.SetQuery("pikachu")
	req, _ := m.Trigger()
	require.True(t, m.Resolve(Result{Generation: req.Generation, Err: errNotFound}))
	assert.False(t, m.Resolve(Result{Generation: req.Generation, Record: pikachu()}))
	assert.Equal(t, Failed, m.Status())
}

func TestLoadingAlwaysExits(t *testing.T) {
	for _, res := range []Result{{Record: pikachu()}, {Err: errNotFound}, {}} {
		m := New()
		m.SetQuery("pikachu")
		req, _ := m.Trigger()
		res.Generation = req.Generation

		m.Resolve(res)
		assert.NotEqual(t, Loading, m.Status())
		assertExclusive(t, m.Snapshot())
	}
}

func TestOverlappingTriggersLastResolvedWins(t *testing.T) {
	m := New()
	m.SetQuery("pikachu")
	first, _ := m.Trigger()
	second, ok := m.Trigger()
	require.True(t, ok, "trigger while loading starts another request")
	assert.Equal(t, 2, m.Snapshot().InFlight)

	// newer resolves first, older one lands afterwards and overwrites it
	m.Resolve(Result{Generation: second.Generation, Record: pikachu()})
	assert.Equal(t, Succeeded, m.Status())
	applied := m.Resolve(Result{Generation: first.Generation, Err: errNotFound})

	assert.True(t, applied)
	s := m.Snapshot()
	assert.Equal(t, Failed, s.Status)
	assert.Equal(t, "Pokemon not found!", s.ErrorMessage)
	assert.Zero(t, s.InFlight)
}

func TestOverlappingTriggersInOrder(t *testing.T) {
	m := New()
	m.SetQuery("pikachu")
	first, _ := m.Trigger()
	second, _ := m.Trigger()

	m.Resolve(Result{Generation: first.Generation, Err: errNotFound})
	m.Resolve(Result{Generation: second.Generation, Record: pikachu()})

	assert.Equal(t, Succeeded, m.Status())
	assert.Equal(t, 25, m.Snapshot().Record.ID)
}

func TestStaleGuardDropsSupersededResult(t *testing.T) {
	m := New(WithStaleGuard(true))
	require.True(t, m.GuardsStale())

	m.SetQuery("pikachu")
	first, _ := m.Trigger()
	second, _ := m.Trigger()
	assert.True(t, m.IsStale(first.Generation))
	assert.False(t, m.IsStale(second.Generation))

	require.True(t, m.Resolve(Result{Generation: second.Generation, Record: pikachu()}))
	assert.False(t, m.Resolve(Result{Generation: first.Generation, Err: errNotFound}))

	s := m.Snapshot()
	assert.Equal(t, Succeeded, s.Status)
	assert.Equal(t, 25, s.Record.ID)
	assert.Zero(t, s.InFlight)
}

func TestStaleGuardStaysLoadingUntilLatestResolves(t *testing.T) {
	m := New(WithStaleGuard(true))
	m.SetQuery("pikachu")
	first, _ := m.Trigger()
	second, _ := m.Trigger()

	m.Resolve(Result{Generation: first.Generation, Record: pikachu()})
	assert.Equal(t, Loading, m.Status())
	assert.Equal(t, 1, m.Snapshot().InFlight)

	m.Resolve(Result{Generation: second.Generation, Err: errNotFound})
	assert.Equal(t, Failed, m.Status())
}

func TestSetQueryDoesNotChangeStatus(t *testing.T) {
	m := New()
	m.SetQuery("pika")
	assert.Equal(t, Idle, m.Status())

	m.SetQuery("pikachu")
	m.Trigger()
	m.SetQuery("pikachu2")
	assert.Equal(t, Loading, m.Status())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
