package types

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a caller-supplied argument is rejected
// before any request is made.
var ErrInvalidArgument = errors.New("invalid argument")

// FirstSeason is the first year the upstream archive covers.
const FirstSeason = 1949

// ValidateSeries checks that s is Cup, Xfinity or Truck.
func ValidateSeries(s Series) error {
	if !s.Valid() {
		return fmt.Errorf("%w: series must be 1, 2 or 3, got %d", ErrInvalidArgument, int(s))
	}
	return nil
}

// ValidateYear checks that year is a plausible season.
func ValidateYear(year int) error {
	if year < FirstSeason {
		return fmt.Errorf("%w: year must be >= %d, got %d", ErrInvalidArgument, FirstSeason, year)
	}
	return nil
}

// ValidateRaceID checks that id is a positive race identifier.
func ValidateRaceID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: race id must be > 0, got %d", ErrInvalidArgument, id)
	}
	return nil
}
