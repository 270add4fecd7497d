package client

import (
	"context"

	"github.com/cupstats/nascar-client/client/internal/api"
)

// --------------------------------------------------------------------
// Results, points and roster - passthrough record feeds
// --------------------------------------------------------------------

// GetRaceResults returns the result rows of one race.
func (c *Client) GetRaceResults(ctx context.Context, raceID int64, q SeasonQuery) ([]RaceResultRow, error) {
	if err := validateRaceID(raceID); err != nil {
		return nil, err
	}
	year, series, err := c.resolveSeason(q)
	if err != nil {
		return nil, err
	}
	return api.GetRaceResults(ctx, c.http, c.baseURL, year, series, raceID)
}

// GetPointsStandings returns the driver points standings feed.
func (c *Client) GetPointsStandings(ctx context.Context, q SeasonQuery) ([]PointsStandingRow, error) {
	year, series, err := c.resolveSeason(q)
	if err != nil {
		return nil, err
	}
	return api.GetPointsStandings(ctx, c.http, c.baseURL, year, series)
}

// GetOwnersPoints returns the final owners points for the season.
func (c *Client) GetOwnersPoints(ctx context.Context, q SeasonQuery) ([]OwnerPointsRow, error) {
	year, series, err := c.resolveSeason(q)
	if err != nil {
		return nil, err
	}
	return api.GetOwnersPoints(ctx, c.http, c.baseURL, year, series)
}

// GetManufacturerPoints returns the final manufacturer points for the season.
func (c *Client) GetManufacturerPoints(ctx context.Context, q SeasonQuery) ([]ManufacturerPointsRow, error) {
	year, series, err := c.resolveSeason(q)
	if err != nil {
		return nil, err
	}
	return api.GetManufacturerPoints(ctx, c.http, c.baseURL, year, series)
}

// GetAllDriversInfo returns the full driver roster. The payload is large.
func (c *Client) GetAllDriversInfo(ctx context.Context) ([]DriverInfoRow, error) {
	return api.GetAllDriversInfo(ctx, c.http, c.baseURL)
}

// GetPitData returns the live pit stop feed of one race. A zero series means Cup.
func (c *Client) GetPitData(ctx context.Context, series Series, raceID int64) ([]PitStopRow, error) {
	if series == 0 {
		series = SeriesCup
	}
	if err := validateSeries(series); err != nil {
		return nil, err
	}
	if err := validateRaceID(raceID); err != nil {
		return nil, err
	}
	return api.GetPitData(ctx, c.http, c.baseURL, series, raceID)
}
