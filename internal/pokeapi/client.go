// Package pokeapi fetches creature records from the public PokeAPI.
//
// One call to Fetch is one GET request. There are no retries, no timeouts
// beyond what the caller's context imposes, and no caching.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"pokesearch/internal/domain"
)

// DefaultBaseURL is the API root used when none is configured
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Fetcher looks up one record by normalized query
type Fetcher interface {
	Fetch(ctx context.Context, query string) (*domain.Record, error)
}

// Client is the HTTP implementation of Fetcher
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	logger    *zap.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL overrides the API root, e.g. to point at a test server
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the public API
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("pokeapi")
	return c
}

// URLFor returns the lookup URL for a normalized query
func (c *Client) URLFor(query string) string {
	return c.baseURL + "/pokemon/" + url.PathEscape(query)
}

// Fetch performs one lookup. A non-2xx status yields *NotFoundError; network
// and decode failures yield *TransportError.
func (c *Client) Fetch(ctx context.Context, query string) (*domain.Record, error) {
	endpoint := c.URLFor(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &TransportError{Op: "request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("lookup failed", zap.String("url", endpoint), zap.Error(err))
		return nil, &TransportError{Op: "request", Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("lookup response",
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain body to allow connection reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &NotFoundError{Query: query, StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "request", Err: err}
	}

	rec, err := Decode(raw)
	if err != nil {
		c.logger.Warn("malformed lookup body", zap.String("url", endpoint), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

// Decode parses a /pokemon response body into a record
func Decode(raw []byte) (*domain.Record, error) {
	var body pokemonResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &TransportError{Op: "decode", Err: err}
	}
	if body.ID == 0 && body.Name == "" {
		return nil, &TransportError{Op: "decode", Err: errors.New("response has no id or name")}
	}
	return body.toRecord(raw), nil
}

// DisplayMessage returns the text shown to the user for a fetch failure
func DisplayMessage(err error) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Error()
	}
	if err == nil {
		return ""
	}
	return fmt.Sprintf("lookup failed: %v", err)
}
