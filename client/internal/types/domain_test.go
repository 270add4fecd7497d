package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeriesKeyAndString(t *testing.T) {
	t.Parallel()
	if got := SeriesTruck.Key(); got != "series_3" {
		t.Fatalf("Key() = %q", got)
	}
	if got := SeriesXfinity.String(); got != "Xfinity" {
		t.Fatalf("String() = %q", got)
	}
	if got := Series(9).String(); got != "Series(9)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestRecordAccessors(t *testing.T) {
	t.Parallel()
	r := Record{
		FieldRaceID:         json.Number("5314"),
		FieldRaceName:       "Daytona 500",
		FieldSeriesID:       json.Number("1"),
		FieldPlayoffRound:   json.Number("0"),
		FieldWinnerDriverID: nil,
	}
	if id, ok := r.RaceID(); !ok || id != 5314 {
		t.Fatalf("RaceID() = %d, %v", id, ok)
	}
	if s, ok := r.SeriesID(); !ok || s != SeriesCup {
		t.Fatalf("SeriesID() = %v, %v", s, ok)
	}
	if n, err := r.PlayoffRound(); err != nil || n != 0 {
		t.Fatalf("PlayoffRound() = %d, %v", n, err)
	}
	if r.HasWinner() {
		t.Fatal("expected no winner for null winner_driver_id")
	}
	if _, ok := r.WinnerDriverID(); ok {
		t.Fatal("expected WinnerDriverID ok=false")
	}
	r[FieldWinnerDriverID] = json.Number("4030")
	if id, ok := r.WinnerDriverID(); !ok || id != 4030 {
		t.Fatalf("WinnerDriverID() = %d, %v", id, ok)
	}
	if r.RaceName() != "Daytona 500" {
		t.Fatalf("RaceName() = %q", r.RaceName())
	}
}

func TestParseRaceDate(t *testing.T) {
	t.Parallel()
	eastern := time.FixedZone("EST", -5*3600)
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2025-02-16T14:30:00", time.Date(2025, 2, 16, 14, 30, 0, 0, eastern)},
		{"2025-02-16T14:30:00.5", time.Date(2025, 2, 16, 14, 30, 0, 500000000, eastern)},
		{"2025-02-16T19:30:00Z", time.Date(2025, 2, 16, 19, 30, 0, 0, time.UTC)},
		{"2025-02-16T14:30:00-05:00", time.Date(2025, 2, 16, 19, 30, 0, 0, time.UTC)},
		{"2030-01-01", time.Date(2030, 1, 1, 0, 0, 0, 0, eastern)},
	}
	for _, c := range cases {
		got, err := ParseRaceDate(c.in, eastern)
		if err != nil {
			t.Fatalf("ParseRaceDate(%q): %v", c.in, err)
		}
		if !got.Equal(c.want) {
			t.Fatalf("ParseRaceDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseRaceDate("next sunday", eastern); err == nil {
		t.Fatal("expected error for garbage date")
	}
	if _, err := (Record{}).RaceDate(eastern); err == nil {
		t.Fatal("expected error for missing race_date")
	}
}

func TestPlayoffRound(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		value   any
		want    int
		wantErr bool
	}{
		{"regular", json.Number("0"), 0, false},
		{"round", json.Number("3"), 3, false},
		{"whole float", float64(2), 2, false},
		{"missing", nil, 0, true},
		{"label", "semifinal", 0, true},
		{"negative", json.Number("-1"), 0, true},
		{"fractional", json.Number("1.5"), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Record{}
			if tc.value != nil {
				r[FieldPlayoffRound] = tc.value
			}
			got, err := r.PlayoffRound()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("PlayoffRound() = %d, want error", got)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("PlayoffRound() = %d, %v; want %d", got, err, tc.want)
			}
		})
	}
}
