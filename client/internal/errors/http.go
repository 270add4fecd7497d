package errors

import "fmt"

// maxBodySnippet bounds how much of an error body is kept on HTTPStatusError.
const maxBodySnippet = 512

// NewHTTPError creates an HTTPStatusError, truncating body.
func NewHTTPError(op, url string, statusCode int, body []byte) *HTTPStatusError {
	if len(body) > maxBodySnippet {
		body = body[:maxBodySnippet]
	}
	return &HTTPStatusError{Op: op, URL: url, StatusCode: statusCode, Body: string(body)}
}

// NewTransportError creates a TransportError for a failed round trip.
func NewTransportError(op, url string, err error) *TransportError {
	return &TransportError{Op: op, URL: url, Underlying: err}
}

// NewDecodeError creates a DecodeError. Format arguments describe the shape problem.
func NewDecodeError(op, url string, format string, args ...any) *DecodeError {
	return &DecodeError{Op: op, URL: url, Underlying: fmt.Errorf(format, args...)}
}

// WrapDecodeError creates a DecodeError around a decoder failure.
func WrapDecodeError(op, url string, err error) *DecodeError {
	return &DecodeError{Op: op, URL: url, Underlying: err}
}

// NewNotFound creates a NotFoundError.
func NewNotFound(op, format string, args ...any) *NotFoundError {
	return &NotFoundError{Op: op, Message: fmt.Sprintf(format, args...)}
}
