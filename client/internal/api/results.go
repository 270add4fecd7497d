package api

import (
	"context"
	"fmt"

	"github.com/cupstats/nascar-client/client/internal/types"
)

const opRaceResults = "race results"

// RaceResultsURL returns the results endpoint for one race.
func RaceResultsURL(baseURL string, year int, series types.Series, raceID int64) string {
	return fmt.Sprintf("%s/data/cacher/production/%d/%d/%d/raceResults.json", baseURL, year, int(series), raceID)
}

// GetRaceResults fetches the result rows for raceID.
func GetRaceResults(ctx context.Context, httpClient HTTPClient, baseURL string, year int, series types.Series, raceID int64) ([]types.RaceResultRow, error) {
	return getRecords(ctx, httpClient, opRaceResults, RaceResultsURL(baseURL, year, series, raceID))
}
