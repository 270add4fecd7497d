package api

import (
	"context"
	"fmt"

	"github.com/cupstats/nascar-client/client/internal/types"
)

const (
	opPointsStandings    = "points standings"
	opOwnersPoints       = "owners points"
	opManufacturerPoints = "manufacturer points"
)

// PointsStandingsURL returns the racing insights points feed endpoint.
func PointsStandingsURL(baseURL string, year int, series types.Series) string {
	return fmt.Sprintf("%s/data/cacher/production/%d/%d/racinginsights-points-feed.json", baseURL, year, int(series))
}

// OwnersPointsURL returns the final owners points endpoint.
func OwnersPointsURL(baseURL string, year int, series types.Series) string {
	return fmt.Sprintf("%s/cacher/%d/%d/final/%d-owners-points.json", baseURL, year, int(series), int(series))
}

// ManufacturerPointsURL returns the final manufacturer points endpoint.
func ManufacturerPointsURL(baseURL string, year int, series types.Series) string {
	return fmt.Sprintf("%s/cacher/%d/%d/final/%d-manufacturer-points.json", baseURL, year, int(series), int(series))
}

// GetPointsStandings fetches the driver points standings feed.
func GetPointsStandings(ctx context.Context, httpClient HTTPClient, baseURL string, year int, series types.Series) ([]types.PointsStandingRow, error) {
	return getRecords(ctx, httpClient, opPointsStandings, PointsStandingsURL(baseURL, year, series))
}

// GetOwnersPoints fetches the final owners points file.
func GetOwnersPoints(ctx context.Context, httpClient HTTPClient, baseURL string, year int, series types.Series) ([]types.OwnerPointsRow, error) {
	return getRecords(ctx, httpClient, opOwnersPoints, OwnersPointsURL(baseURL, year, series))
}

// GetManufacturerPoints fetches the final manufacturer points file.
func GetManufacturerPoints(ctx context.Context, httpClient HTTPClient, baseURL string, year int, series types.Series) ([]types.ManufacturerPointsRow, error) {
	return getRecords(ctx, httpClient, opManufacturerPoints, ManufacturerPointsURL(baseURL, year, series))
}
