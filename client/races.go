package client

import (
	"context"
	"fmt"
	"time"

	"github.com/cupstats/nascar-client/client/internal/api"
	clienterrors "github.com/cupstats/nascar-client/client/internal/errors"
	"github.com/cupstats/nascar-client/client/internal/schedule"
)

// --------------------------------------------------------------------
// Schedule operations - race_list_basic.json
// --------------------------------------------------------------------

// GetSeasonSchedule returns every race of one series in one season, in API order.
func (c *Client) GetSeasonSchedule(ctx context.Context, q SeasonQuery) ([]Race, error) {
	year, series, err := c.resolveSeason(q)
	if err != nil {
		return nil, err
	}
	return api.GetSeasonSchedule(ctx, c.http, c.baseURL, year, series)
}

// filterSeason fetches a season and applies keep with a single "now".
func (c *Client) filterSeason(ctx context.Context, q SeasonQuery, keep func([]Race, time.Time) ([]Race, error)) ([]Race, error) {
	year, series, err := c.resolveSeason(q)
	if err != nil {
		return nil, err
	}
	now := c.now()
	list, err := api.GetRaceList(ctx, c.http, c.baseURL, year)
	if err != nil {
		return nil, err
	}
	races, err := list.Races(series)
	if err != nil {
		return nil, err
	}
	out, err := keep(races, now)
	if err != nil {
		return nil, clienterrors.WrapDecodeError("race list", list.URL, err)
	}
	return out, nil
}

// GetFinishedRaces returns the races dated strictly before now.
func (c *Client) GetFinishedRaces(ctx context.Context, q SeasonQuery) ([]Race, error) {
	return c.filterSeason(ctx, q, func(races []Race, now time.Time) ([]Race, error) {
		return schedule.Finished(races, now, c.loc)
	})
}

// GetUpcomingRaces returns the races dated at or after now. Together with
// GetFinishedRaces it partitions the season schedule.
func (c *Client) GetUpcomingRaces(ctx context.Context, q SeasonQuery) ([]Race, error) {
	return c.filterSeason(ctx, q, func(races []Race, now time.Time) ([]Race, error) {
		return schedule.Upcoming(races, now, c.loc)
	})
}

// GetRegularSeasonRaces returns the races with playoff_round == 0.
func (c *Client) GetRegularSeasonRaces(ctx context.Context, q SeasonQuery) ([]Race, error) {
	return c.filterSeason(ctx, q, func(races []Race, _ time.Time) ([]Race, error) {
		return schedule.RegularSeason(races)
	})
}

// GetPlayoffRaces returns the races with playoff_round > 0.
func (c *Client) GetPlayoffRaces(ctx context.Context, q SeasonQuery) ([]Race, error) {
	return c.filterSeason(ctx, q, func(races []Race, _ time.Time) ([]Race, error) {
		return schedule.Playoffs(races)
	})
}

// currentSeason fetches this year's race list and splits it per series.
// Buckets absent from the document are skipped.
func (c *Client) currentSeason(ctx context.Context, now time.Time) (schedule.Buckets, string, error) {
	list, err := api.GetRaceList(ctx, c.http, c.baseURL, now.In(c.loc).Year())
	if err != nil {
		return nil, "", err
	}
	buckets := make(schedule.Buckets, len(AllSeries))
	for _, s := range AllSeries {
		if !list.Has(s) {
			continue
		}
		races, err := list.Races(s)
		if err != nil {
			return nil, "", err
		}
		buckets[s] = races
	}
	return buckets, list.URL, nil
}

// GetNextRace returns the earliest upcoming race across Cup, Xfinity and
// Truck in the current season. It returns a NotFoundError when no series has
// a race left.
func (c *Client) GetNextRace(ctx context.Context) (Race, error) {
	now := c.now()
	buckets, url, err := c.currentSeason(ctx, now)
	if err != nil {
		return nil, err
	}
	r, ok, err := schedule.Next(buckets, now, c.loc)
	if err != nil {
		return nil, clienterrors.WrapDecodeError("race list", url, err)
	}
	if !ok {
		return nil, clienterrors.NewNotFound("next race", "no upcoming race in any series for %d", now.In(c.loc).Year())
	}
	return r, nil
}

// CurrentRace is the result of GetCurrentRace. Live is false when nothing is
// running and Race is the next scheduled race instead.
type CurrentRace struct {
	Race Race
	Date time.Time
	Live bool
}

// String describes the race the way a status line would.
func (cr CurrentRace) String() string {
	if cr.Live {
		return fmt.Sprintf("Current race: %s (started %s)", cr.Race.RaceName(), cr.Date.Format(time.DateTime))
	}
	return fmt.Sprintf("No current race, the next race is the %s on %s", cr.Race.RaceName(), cr.Date.Format(time.DateTime))
}

// GetCurrentRace returns the first race, scanning Cup, Xfinity then Truck,
// that has started but has no recorded winner. When none is running it falls
// back to the next race with Live set to false.
func (c *Client) GetCurrentRace(ctx context.Context) (CurrentRace, error) {
	now := c.now()
	buckets, url, err := c.currentSeason(ctx, now)
	if err != nil {
		return CurrentRace{}, err
	}

	race, isLive, err := schedule.Live(buckets, now, c.loc)
	if err != nil {
		return CurrentRace{}, clienterrors.WrapDecodeError("race list", url, err)
	}
	if !isLive {
		var ok bool
		race, ok, err = schedule.Next(buckets, now, c.loc)
		if err != nil {
			return CurrentRace{}, clienterrors.WrapDecodeError("race list", url, err)
		}
		if !ok {
			return CurrentRace{}, clienterrors.NewNotFound("current race", "no current or upcoming race for %d", now.In(c.loc).Year())
		}
	}

	date, err := race.RaceDate(c.loc)
	if err != nil {
		return CurrentRace{}, clienterrors.WrapDecodeError("race list", url, err)
	}
	return CurrentRace{Race: race, Date: date, Live: isLive}, nil
}
