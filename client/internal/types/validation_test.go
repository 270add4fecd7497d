package types

import (
	"errors"
	"testing"
)

func TestValidateSeries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in Series
		ok bool
	}{
		{SeriesCup, true}, {SeriesXfinity, true}, {SeriesTruck, true}, {0, false}, {4, false}, {-1, false},
	}
	for _, c := range cases {
		err := ValidateSeries(c.in)
		if c.ok && err != nil {
			t.Fatalf("expected ok for %d, got %v", c.in, err)
		}
		if !c.ok && !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument for %d, got %v", c.in, err)
		}
	}
}

func TestValidateYearAndRaceID(t *testing.T) {
	t.Parallel()
	if err := ValidateYear(2025); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := ValidateYear(1948); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if err := ValidateRaceID(5314); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := ValidateRaceID(0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
