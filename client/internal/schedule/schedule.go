// Package schedule holds the race list selection rules. Every function takes
// "now" explicitly so a single call evaluates against one instant.
package schedule

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/cupstats/nascar-client/client/internal/types"
)

// Buckets maps each series to its races in API order.
type Buckets map[types.Series][]types.Race

// datedRace pairs a race with its parsed race_date.
type datedRace struct {
	race types.Race
	date time.Time
}

func dated(races []types.Race, loc *time.Location) ([]datedRace, error) {
	out := make([]datedRace, 0, len(races))
	for i, r := range races {
		d, err := r.RaceDate(loc)
		if err != nil {
			return nil, fmt.Errorf("race %d: %w", i, err)
		}
		out = append(out, datedRace{race: r, date: d})
	}
	return out, nil
}

func filterDated(races []types.Race, loc *time.Location, keep func(time.Time) bool) ([]types.Race, error) {
	dr, err := dated(races, loc)
	if err != nil {
		return nil, err
	}
	kept := lo.Filter(dr, func(d datedRace, _ int) bool { return keep(d.date) })
	return lo.Map(kept, func(d datedRace, _ int) types.Race { return d.race }), nil
}

// Finished returns races whose date is strictly before now.
func Finished(races []types.Race, now time.Time, loc *time.Location) ([]types.Race, error) {
	return filterDated(races, loc, func(d time.Time) bool { return d.Before(now) })
}

// Upcoming returns races whose date is at or after now; it is the complement of Finished.
func Upcoming(races []types.Race, now time.Time, loc *time.Location) ([]types.Race, error) {
	return filterDated(races, loc, func(d time.Time) bool { return !d.Before(now) })
}

func filterRound(races []types.Race, keep func(round int) bool) ([]types.Race, error) {
	for i, r := range races {
		if _, err := r.PlayoffRound(); err != nil {
			return nil, fmt.Errorf("race %d: %w", i, err)
		}
	}
	return lo.Filter(races, func(r types.Race, _ int) bool {
		n, _ := r.PlayoffRound()
		return keep(n)
	}), nil
}

// RegularSeason returns races with playoff_round == 0.
func RegularSeason(races []types.Race) ([]types.Race, error) {
	return filterRound(races, func(n int) bool { return n == 0 })
}

// Playoffs returns races with playoff_round > 0.
func Playoffs(races []types.Race) ([]types.Race, error) {
	return filterRound(races, func(n int) bool { return n > 0 })
}

// firstAfter returns the first race in list order dated strictly after now.
func firstAfter(races []types.Race, now time.Time, loc *time.Location) (datedRace, bool, error) {
	for i, r := range races {
		d, err := r.RaceDate(loc)
		if err != nil {
			return datedRace{}, false, fmt.Errorf("race %d: %w", i, err)
		}
		if d.After(now) {
			return datedRace{race: r, date: d}, true, nil
		}
	}
	return datedRace{}, false, nil
}

// Next picks, per series, the first race dated after now and returns the
// earliest of those candidates. ok is false when no series has a future race.
func Next(buckets Buckets, now time.Time, loc *time.Location) (types.Race, bool, error) {
	var candidates []datedRace
	for _, s := range types.AllSeries {
		races, present := buckets[s]
		if !present {
			continue
		}
		c, found, err := firstAfter(races, now, loc)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", s.Key(), err)
		}
		if found {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil, false, nil
	}
	best := lo.MinBy(candidates, func(a, b datedRace) bool { return a.date.Before(b.date) })
	return best.race, true, nil
}

// Live scans series in API order and returns the first race that has started
// (date strictly before now) but has no recorded winner.
func Live(buckets Buckets, now time.Time, loc *time.Location) (types.Race, bool, error) {
	for _, s := range types.AllSeries {
		for i, r := range buckets[s] {
			d, err := r.RaceDate(loc)
			if err != nil {
				return nil, false, fmt.Errorf("%s race %d: %w", s.Key(), i, err)
			}
			if d.Before(now) && !r.HasWinner() {
				return r, true, nil
			}
		}
	}
	return nil, false, nil
}
