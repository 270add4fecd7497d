package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	clienterrors "github.com/cupstats/nascar-client/client/internal/errors"
	"github.com/cupstats/nascar-client/client/internal/types"
)

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestIDHeader carries a per-request UUID for log correlation.
const RequestIDHeader = "X-Request-ID"

// fetch performs one GET and hands the body of a 2xx response to decode.
// The request is counted once, after decode has run, so a 2xx response with
// an unusable body is recorded as a decode failure rather than a success.
func fetch(ctx context.Context, httpClient HTTPClient, op, url string, decode func(body []byte) error) error {
	if err := ctx.Err(); err != nil {
		return clienterrors.NewTransportError(op, url, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return clienterrors.NewTransportError(op, url, err)
	}
	reqID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		observe(op, outcomeTransport, start)
		log.Debug().Err(err).Str("op", op).Str("url", url).Str("request_id", reqID).Msg("fetch failed")
		return clienterrors.NewTransportError(op, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(op, outcomeTransport, start)
		return clienterrors.NewTransportError(op, url, err)
	}

	log.Debug().
		Str("op", op).
		Str("url", url).
		Str("request_id", reqID).
		Int("status_code", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("fetch completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observe(op, outcomeHTTPStatus, start)
		return clienterrors.NewHTTPError(op, url, resp.StatusCode, body)
	}
	if err := decode(body); err != nil {
		observe(op, outcomeDecode, start)
		log.Debug().Err(err).Str("op", op).Str("request_id", reqID).Msg("decode failed")
		return err
	}
	observe(op, outcomeOK, start)
	return nil
}

// decodeJSON decodes exactly one JSON value from body into out, keeping
// numbers as json.Number.
func decodeJSON(op, url string, body []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return clienterrors.WrapDecodeError(op, url, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return clienterrors.NewDecodeError(op, url, "trailing data after JSON value")
	}
	return nil
}

// getRecords fetches url and decodes a JSON array of objects.
func getRecords(ctx context.Context, httpClient HTTPClient, op, url string) ([]types.Record, error) {
	var rows []types.Record
	err := fetch(ctx, httpClient, op, url, func(body []byte) error {
		if err := decodeJSON(op, url, body, &rows); err != nil {
			return err
		}
		if rows == nil {
			// JSON null
			return clienterrors.NewDecodeError(op, url, "expected array, got null")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
