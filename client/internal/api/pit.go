package api

import (
	"context"
	"fmt"

	"github.com/cupstats/nascar-client/client/internal/types"
)

const opPitData = "pit data"

// PitDataURL returns the live pit stop feed for a race.
func PitDataURL(baseURL string, series types.Series, raceID int64) string {
	return fmt.Sprintf("%s/cacher/live/series_%d/%d/live-pit-data.json", baseURL, int(series), raceID)
}

// GetPitData fetches the live pit stop rows for raceID.
func GetPitData(ctx context.Context, httpClient HTTPClient, baseURL string, series types.Series, raceID int64) ([]types.PitStopRow, error) {
	return getRecords(ctx, httpClient, opPitData, PitDataURL(baseURL, series, raceID))
}
