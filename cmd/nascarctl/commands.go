package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cupstats/nascar-client/client"
)

// seasonFetch is any client operation keyed by year and series.
type seasonFetch func(*client.Client, context.Context, client.SeasonQuery) ([]client.Record, error)

// addSeasonFlags registers --year and --series on cmd.
func addSeasonFlags(cmd *cobra.Command, q *client.SeasonQuery) {
	cmd.Flags().IntVar(&q.Year, "year", 0, "Season year (default: current year)")
	cmd.Flags().IntVar((*int)(&q.Series), "series", int(client.SeriesCup), "Series: 1 Cup, 2 Xfinity, 3 Truck")
}

func newSeasonCmd(opts *rootOptions, use, short string, fetch seasonFetch) *cobra.Command {
	var q client.SeasonQuery

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().
				Str("command", use).
				Int("year", q.Year).
				Int("series", int(q.Series)).
				Str("base_url", opts.baseURL).
				Msg("fetching season data")

			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx, cancel := opts.withTimeout(cmd.Context())
			defer cancel()

			start := time.Now()
			rows, err := fetch(c, ctx, q)
			elapsed := time.Since(start)
			if err != nil {
				log.Error().
					Err(err).
					Str("command", use).
					Dur("elapsed", elapsed).
					Msg("fetch failed")
				return err
			}

			log.Debug().Str("command", use).Int("rows", len(rows)).Dur("elapsed", elapsed).Msg("fetch completed")
			return writeRecords(cmd.OutOrStdout(), opts, c, rows)
		},
	}
	addSeasonFlags(cmd, &q)
	return cmd
}

func parseRaceID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("race id %q: %w", arg, err)
	}
	return id, nil
}

func newResultsCmd(opts *rootOptions) *cobra.Command {
	var q client.SeasonQuery

	cmd := &cobra.Command{
		Use:   "results <race-id>",
		Short: "Results of one race",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raceID, err := parseRaceID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx, cancel := opts.withTimeout(cmd.Context())
			defer cancel()

			rows, err := c.GetRaceResults(ctx, raceID, q)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), opts, c, rows)
		},
	}
	addSeasonFlags(cmd, &q)
	return cmd
}

func newPitDataCmd(opts *rootOptions) *cobra.Command {
	var series int

	cmd := &cobra.Command{
		Use:   "pit-data <race-id>",
		Short: "Live pit stop feed of one race",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raceID, err := parseRaceID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx, cancel := opts.withTimeout(cmd.Context())
			defer cancel()

			rows, err := c.GetPitData(ctx, client.Series(series), raceID)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), opts, c, rows)
		},
	}
	cmd.Flags().IntVar(&series, "series", int(client.SeriesCup), "Series: 1 Cup, 2 Xfinity, 3 Truck")
	return cmd
}

func newDriversCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "Full driver roster (large)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx, cancel := opts.withTimeout(cmd.Context())
			defer cancel()

			rows, err := c.GetAllDriversInfo(ctx)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), opts, c, rows)
		},
	}
}

func newNextRaceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "next-race",
		Short: "Earliest upcoming race across all series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx, cancel := opts.withTimeout(cmd.Context())
			defer cancel()

			race, err := c.GetNextRace(ctx)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), opts, c, []client.Record{race})
		},
	}
}

func newCurrentRaceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "current-race",
		Short: "Race in progress, or the next one when nothing is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.newClient()
			if err != nil {
				return err
			}
			ctx, cancel := opts.withTimeout(cmd.Context())
			defer cancel()

			cr, err := c.GetCurrentRace(ctx)
			if err != nil {
				return err
			}
			if !cr.Live {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), cr.String())
			}
			return writeRecords(cmd.OutOrStdout(), opts, c, []client.Record{cr.Race})
		},
	}
}
