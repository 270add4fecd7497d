package client

import (
	stderrors "errors"

	clienterrors "github.com/cupstats/nascar-client/client/internal/errors"
	"github.com/cupstats/nascar-client/client/internal/types"
)

// Re-export the error taxonomy so callers use errors.As against client types.
type (
	TransportError  = clienterrors.TransportError
	HTTPStatusError = clienterrors.HTTPStatusError
	DecodeError     = clienterrors.DecodeError
	NotFoundError   = clienterrors.NotFoundError
	ErrorKind       = clienterrors.Kind
)

const (
	KindUnknown    = clienterrors.KindUnknown
	KindTransport  = clienterrors.KindTransport
	KindHTTPStatus = clienterrors.KindHTTPStatus
	KindDecode     = clienterrors.KindDecode
	KindNotFound   = clienterrors.KindNotFound
)

var (
	// ErrNotFound matches NotFoundError and HTTP 404 responses.
	ErrNotFound = clienterrors.ErrNotFound

	// ErrInvalidArgument matches argument validation failures raised before any request.
	ErrInvalidArgument = types.ErrInvalidArgument
)

// KindOf classifies err.
func KindOf(err error) ErrorKind { return clienterrors.KindOf(err) }

// IsNotFound reports whether err is a logical absence or a 404.
func IsNotFound(err error) bool { return stderrors.Is(err, ErrNotFound) }
