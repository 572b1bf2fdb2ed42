package clockify

import (
	"fmt"
	"strings"
)

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s %s failed: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError carries a non-2xx response.
type RemoteError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf(
		"request %s %s failed with status %d: %s",
		e.Method,
		e.Path,
		e.StatusCode,
		snippet(e.Body, 512),
	)
}

func snippet(body []byte, max int) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
