package api

import (
	"context"
	"fmt"

	clienterrors "github.com/cupstats/nascar-client/client/internal/errors"
	"github.com/cupstats/nascar-client/client/internal/types"
)

const opRaceList = "race list"

// RaceListURL returns the season race list endpoint.
func RaceListURL(baseURL string, year int) string {
	return fmt.Sprintf("%s/cacher/%d/race_list_basic.json", baseURL, year)
}

// RaceList is a decoded race_list_basic.json document. Only the series
// buckets the document carries are present in races.
type RaceList struct {
	URL   string
	races map[types.Series][]types.Race
}

// GetRaceList fetches the race list for every series in year. Each known
// series bucket is decoded up front so a malformed bucket fails the request.
func GetRaceList(ctx context.Context, httpClient HTTPClient, baseURL string, year int) (*RaceList, error) {
	url := RaceListURL(baseURL, year)
	list := &RaceList{URL: url, races: make(map[types.Series][]types.Race, len(types.AllSeries))}
	err := fetch(ctx, httpClient, opRaceList, url, func(body []byte) error {
		var buckets types.RaceList
		if err := decodeJSON(opRaceList, url, body, &buckets); err != nil {
			return err
		}
		if buckets == nil {
			return clienterrors.NewDecodeError(opRaceList, url, "expected object, got null")
		}
		for _, s := range types.AllSeries {
			raw, ok := buckets[s.Key()]
			if !ok {
				continue
			}
			var races []types.Race
			if err := decodeJSON(opRaceList, url, raw, &races); err != nil {
				return err
			}
			if races == nil {
				races = []types.Race{}
			}
			list.races[s] = races
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Has reports whether the document carries a bucket for s.
func (l *RaceList) Has(s types.Series) bool {
	_, ok := l.races[s]
	return ok
}

// Races returns the bucket for s. A missing bucket is a DecodeError.
func (l *RaceList) Races(s types.Series) ([]types.Race, error) {
	races, ok := l.races[s]
	if !ok {
		return nil, clienterrors.NewDecodeError(opRaceList, l.URL, "missing %s bucket", s.Key())
	}
	return races, nil
}

// GetSeasonSchedule fetches the race list and returns the bucket for series.
func GetSeasonSchedule(ctx context.Context, httpClient HTTPClient, baseURL string, year int, series types.Series) ([]types.Race, error) {
	list, err := GetRaceList(ctx, httpClient, baseURL, year)
	if err != nil {
		return nil, err
	}
	return list.Races(series)
}
