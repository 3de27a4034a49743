package input

import (
	"pokesearch/internal/search"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Machine *search.Machine
}

// IsLoading reports whether a lookup is outstanding
func (c *ModelContext) IsLoading() bool {
	return c.Machine.Status() == search.Loading
}

// HasRecord reports whether a record is on screen
func (c *ModelContext) HasRecord() bool {
	return c.Machine.Snapshot().Record != nil
}

// Query returns the current query text
func (c *ModelContext) Query() string {
	return c.Machine.Snapshot().Query
}
