package pokeapi

import "fmt"

// NotFoundMessage is the user-facing text for any non-success response
const NotFoundMessage = "Pokemon not found!"

// NotFoundError is returned when the API answers with a non-2xx status.
// Its message is fixed; the status code is kept for logging.
type NotFoundError struct {
	Query      string
	StatusCode int
}

func (e *NotFoundError) Error() string {
	return NotFoundMessage
}

// TransportError is returned when the request could not be completed or the
// body could not be decoded. Its message is the underlying diagnostic.
type TransportError struct {
	Op  string // "request" or "decode"
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s failed", e.Op)
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
