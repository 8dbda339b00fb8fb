package api

import (
	"errors"
	"fmt"
)

// Common service errors.
var (
	// ErrUnavailable is returned when no response reached us at all
	// (connection refused, DNS failure, transport timeout).
	ErrUnavailable = errors.New("price service unreachable")
	// ErrNotFound is returned when a game does not exist on the service.
	ErrNotFound = errors.New("not found")
	// ErrUpstreamDown is returned when the service reports its upstream
	// deals catalog is unavailable (503).
	ErrUpstreamDown = errors.New("upstream deals catalog unavailable")
)

// StatusError is a non-2xx response from the service. The body is kept
// only for display; the client never acts on its contents.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("price service error %d", e.Code)
	}
	return fmt.Sprintf("price service error %d: %s", e.Code, e.Body)
}

// Is maps well-known status codes onto the sentinel errors so callers
// can use errors.Is without inspecting codes.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Code == 404
	case ErrUpstreamDown:
		return e.Code == 503
	}
	return false
}
