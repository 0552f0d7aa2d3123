package feedsync

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned before any network call when the client
// has no access token; no state is mutated.
var ErrUnauthenticated = errors.New("feedsync: not authenticated")

// ValidationError reports locally rejected input; no network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("feedsync: invalid %s: %s", e.Field, e.Reason)
}

type ErrorKind int

const (
	// ErrorKindNetwork means the request never completed.
	ErrorKindNetwork ErrorKind = iota
	// ErrorKindServer means a non-2xx status or a malformed response body.
	ErrorKindServer
)

// RequestError wraps a failed request. All request failures are terminal
// for that invocation; nothing is retried automatically.
type RequestError struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.Kind == ErrorKindServer && e.StatusCode != 0 {
		return fmt.Sprintf("feedsync: %s: server returned %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("feedsync: %s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
