package proxy

import (
	"errors"
	"fmt"
)

// ErrUnreachable wraps transport-level failures: connection refused, DNS
// failure, or a timeout before any response arrived.
var ErrUnreachable = errors.New("proxy unreachable")

// BadStatusError reports a non-2xx response from the proxy.
type BadStatusError struct {
	Code int
	Body string
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("proxy returned %d: %s", e.Code, e.Body)
}

// Unauthorized reports whether the status indicates a credential problem.
func (e *BadStatusError) Unauthorized() bool {
	return e.Code == 401 || e.Code == 403
}

// MalformedBodyError reports a 200 response whose body could not be parsed
// as a JSON array of tool descriptors.
type MalformedBodyError struct {
	Err error
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("malformed proxy response: %v", e.Err)
}

func (e *MalformedBodyError) Unwrap() error { return e.Err }

// unreachable wraps err so it matches ErrUnreachable via errors.Is while
// keeping the underlying transport detail in the message.
func unreachable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}
