package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ------------------------------
// Series
// ------------------------------

// Series identifies one of the three national touring series. The numeric
// values are the upstream API's own identifiers.
type Series int

const (
	SeriesCup     Series = 1
	SeriesXfinity Series = 2
	SeriesTruck   Series = 3
)

// AllSeries lists every series in the order the API numbers them.
var AllSeries = []Series{SeriesCup, SeriesXfinity, SeriesTruck}

// Key returns the race list bucket key for the series, e.g. "series_1".
func (s Series) Key() string { return fmt.Sprintf("series_%d", int(s)) }

// Valid reports whether s is one of the known series.
func (s Series) Valid() bool { return s >= SeriesCup && s <= SeriesTruck }

func (s Series) String() string {
	switch s {
	case SeriesCup:
		return "Cup"
	case SeriesXfinity:
		return "Xfinity"
	case SeriesTruck:
		return "Truck"
	default:
		return fmt.Sprintf("Series(%d)", int(s))
	}
}

// ------------------------------
// Records
// ------------------------------

// Record is one JSON object exactly as the upstream service returned it.
// Numbers are kept as json.Number so identifiers survive without float rounding.
type Record map[string]any

// Race is a race list entry. Only race_date, race_name, series_id,
// playoff_round, winner_driver_id and race_id are ever read by the client.
type Race = Record

// Opaque upstream rows.
type (
	RaceResultRow         = Record
	PointsStandingRow     = Record
	OwnerPointsRow        = Record
	ManufacturerPointsRow = Record
	DriverInfoRow         = Record
	PitStopRow            = Record
)

// Field names the client reads from race list entries.
const (
	FieldRaceDate       = "race_date"
	FieldRaceName       = "race_name"
	FieldSeriesID       = "series_id"
	FieldPlayoffRound   = "playoff_round"
	FieldWinnerDriverID = "winner_driver_id"
	FieldRaceID         = "race_id"
)

// Str returns the string value stored under key.
func (r Record) Str(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Int returns the integer value stored under key. It accepts json.Number,
// float64 and numeric strings.
func (r Record) Int(key string) (int64, bool) {
	switch v := r[key].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return n, true
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// RaceName returns race_name, or "" when absent.
func (r Record) RaceName() string {
	s, _ := r.Str(FieldRaceName)
	return s
}

// RaceID returns race_id.
func (r Record) RaceID() (int64, bool) { return r.Int(FieldRaceID) }

// SeriesID returns series_id as a Series.
func (r Record) SeriesID() (Series, bool) {
	n, ok := r.Int(FieldSeriesID)
	return Series(n), ok
}

// PlayoffRound returns playoff_round; 0 is a regular season race. A missing,
// fractional or negative value is an error.
func (r Record) PlayoffRound() (int, error) {
	var n int64
	switch v := r[FieldPlayoffRound].(type) {
	case nil:
		return 0, fmt.Errorf("%s missing", FieldPlayoffRound)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s %q is not an integer", FieldPlayoffRound, v.String())
		}
		n = i
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s %v is not an integer", FieldPlayoffRound, v)
		}
		n = int64(v)
	case int:
		n = int64(v)
	case int64:
		n = v
	default:
		return 0, fmt.Errorf("%s has unexpected type %T", FieldPlayoffRound, v)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s %d is negative", FieldPlayoffRound, n)
	}
	return int(n), nil
}

// WinnerDriverID returns the winning driver, ok is false when the race has
// no recorded winner (null or absent).
func (r Record) WinnerDriverID() (int64, bool) {
	if r[FieldWinnerDriverID] == nil {
		return 0, false
	}
	return r.Int(FieldWinnerDriverID)
}

// HasWinner reports whether winner_driver_id is set.
func (r Record) HasWinner() bool { return r[FieldWinnerDriverID] != nil }

// RaceDate parses race_date. Zone-less timestamps are read in loc.
func (r Record) RaceDate(loc *time.Location) (time.Time, error) {
	s, ok := r.Str(FieldRaceDate)
	if !ok {
		return time.Time{}, fmt.Errorf("%s missing or not a string", FieldRaceDate)
	}
	return ParseRaceDate(s, loc)
}

var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseRaceDate parses an ISO-8601 timestamp as the API emits it.
func ParseRaceDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised %s %q", FieldRaceDate, s)
}
