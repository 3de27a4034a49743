//go:build e2e && unix

package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

const pikachuJSON = `{
  "id": 25,
  "name": "pikachu",
  "height": 4,
  "weight": 60,
  "sprites": {
    "front_default": "https://img.example/sprites/25.png",
    "other": {"official-artwork": {"front_default": "https://img.example/official-artwork/25.png"}}
  },
  "types": [{"slot": 1, "type": {"name": "electric"}}],
  "stats": [
    {"base_stat": 35, "stat": {"name": "hp"}},
    {"base_stat": 55, "stat": {"name": "attack"}},
    {"base_stat": 90, "stat": {"name": "speed"}}
  ],
  "abilities": [
    {"slot": 1, "is_hidden": false, "ability": {"name": "static"}},
    {"slot": 3, "is_hidden": true, "ability": {"name": "lightning-rod"}}
  ]
}`

const bulbasaurJSON = `{
  "id": 1,
  "name": "bulbasaur",
  "height": 7,
  "weight": 69,
  "sprites": {"front_default": "https://img.example/sprites/1.png"},
  "types": [
    {"slot": 1, "type": {"name": "grass"}},
    {"slot": 2, "type": {"name": "poison"}}
  ],
  "stats": [{"base_stat": 45, "stat": {"name": "hp"}}],
  "abilities": [{"slot": 1, "is_hidden": false, "ability": {"name": "overgrow"}}]
}`

// fakeAPI serves a tiny slice of the /pokemon endpoint. Lookups for "slowpoke"
// are held back by delay so tests can observe the loading state.
type fakeAPI struct {
	srv   *httptest.Server
	delay time.Duration

	mu   sync.Mutex
	hits []string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{delay: 1500 * time.Millisecond}
	bodies := map[string]string{
		"pikachu":   pikachuJSON,
		"25":        pikachuJSON,
		"bulbasaur": bulbasaurJSON,
		"1":         bulbasaurJSON,
		"slowpoke":  pikachuJSON,
	}
	api.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/pokemon/")
		api.mu.Lock()
		api.hits = append(api.hits, name)
		api.mu.Unlock()

		if name == "slowpoke" {
			select {
			case <-time.After(api.delay):
			case <-r.Context().Done():
				return
			}
		}
		body, ok := bodies[name]
		if !ok {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	return api
}

func (a *fakeAPI) URL() string { return a.srv.URL }

func (a *fakeAPI) Close() { a.srv.Close() }

// Hits returns the lookup names requested so far
func (a *fakeAPI) Hits() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.hits...)
}
