// Package errors provides the typed error taxonomy returned by the client SDK.
// Callers branch on failure kind with errors.As or on Kind(err).
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind names the class of a client failure.
type Kind int

const (
	// KindUnknown is any error not produced by this package.
	KindUnknown Kind = iota

	// KindTransport covers connection, DNS, TLS, timeout and cancellation failures.
	KindTransport

	// KindHTTPStatus is a response with a non-2xx status.
	KindHTTPStatus

	// KindDecode is a body that is not JSON or does not have the expected shape.
	KindDecode

	// KindNotFound is a logical absence, e.g. no upcoming race in any series.
	KindNotFound
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "Transport"
	case KindHTTPStatus:
		return "HTTPStatus"
	case KindDecode:
		return "Decode"
	case KindNotFound:
		return "NotFound"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ErrNotFound matches NotFoundError and 404 responses via errors.Is.
var ErrNotFound = stderrors.New("not found")

// TransportError is returned when the request never produced a response.
type TransportError struct {
	Op         string // client operation, e.g. "race list"
	URL        string
	Underlying error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("[%s] %s: GET %s: %v", KindTransport, e.Op, e.URL, e.Underlying)
}

// Unwrap exposes the cause so context.Canceled and net errors stay matchable.
func (e *TransportError) Unwrap() error { return e.Underlying }

// HTTPStatusError is returned for any non-2xx response.
type HTTPStatusError struct {
	Op         string
	URL        string
	StatusCode int
	Body       string // response body, truncated, for debugging
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("[%s] %s: GET %s: HTTP %d", KindHTTPStatus, e.Op, e.URL, e.StatusCode)
}

// Is reports 404 responses as ErrNotFound.
func (e *HTTPStatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == 404
}

// DecodeError is returned when a 2xx body cannot be decoded into the expected shape.
type DecodeError struct {
	Op         string
	URL        string
	Underlying error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("[%s] %s: %s: %v", KindDecode, e.Op, e.URL, e.Underlying)
}

func (e *DecodeError) Unwrap() error { return e.Underlying }

// NotFoundError reports that a well-formed response did not contain what was asked for.
type NotFoundError struct {
	Op      string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", KindNotFound, e.Op, e.Message)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// KindOf classifies err by walking its chain.
func KindOf(err error) Kind {
	var (
		te *TransportError
		he *HTTPStatusError
		de *DecodeError
		ne *NotFoundError
	)
	switch {
	case err == nil:
		return KindUnknown
	case stderrors.As(err, &te):
		return KindTransport
	case stderrors.As(err, &he):
		return KindHTTPStatus
	case stderrors.As(err, &de):
		return KindDecode
	case stderrors.As(err, &ne):
		return KindNotFound
	default:
		return KindUnknown
	}
}
