package api

import (
	"context"
	"fmt"

	clienterrors "github.com/cupstats/nascar-client/client/internal/errors"
	"github.com/cupstats/nascar-client/client/internal/types"
)

const opDrivers = "drivers"

// DriversURL returns the full driver roster endpoint.
func DriversURL(baseURL string) string {
	return fmt.Sprintf("%s/cacher/drivers.json", baseURL)
}

// GetAllDriversInfo fetches the roster and unwraps its "response" envelope.
// The payload is large (several hundred drivers).
func GetAllDriversInfo(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.DriverInfoRow, error) {
	url := DriversURL(baseURL)
	var dr types.DriversResponse
	err := fetch(ctx, httpClient, opDrivers, url, func(body []byte) error {
		if err := decodeJSON(opDrivers, url, body, &dr); err != nil {
			return err
		}
		if dr.Response == nil || *dr.Response == nil {
			return clienterrors.NewDecodeError(opDrivers, url, "missing response array")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return *dr.Response, nil
}
