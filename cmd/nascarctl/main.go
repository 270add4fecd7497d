package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cupstats/nascar-client/client"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

// rootOptions carries the persistent flags shared by every sub-command.
type rootOptions struct {
	baseURL string
	timeout time.Duration
	debug   bool
	format  string
	columns []string
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Str("kind", client.KindOf(err).String()).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "nascarctl",
		Short:         "Query NASCAR schedules, results and standings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			InitLogger(cmd.ErrOrStderr())
			if opts.debug {
				SetLogLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				SetLogLevel(LogLevelFromEnv())
			}
			if opts.format != formatJSON && opts.format != formatTable {
				return fmt.Errorf("--format must be %q or %q, got %q", formatJSON, formatTable, opts.format)
			}
			return nil
		},
	}

	defaultURL := getEnv("NASCAR_BASE_URL", client.DefaultBaseURL)
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", defaultURL, "Base URL of the NASCAR cacher API")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Per-command request deadline")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable verbose debug output, including HTTP dumps")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "o", formatJSON, "Output format: json or table")
	rootCmd.PersistentFlags().StringSliceVar(&opts.columns, "columns", nil, "Table columns to show, in order (table format only)")

	// Sub-commands
	rootCmd.AddCommand(newSeasonCmd(opts, "schedule", "Full season schedule", (*client.Client).GetSeasonSchedule))
	rootCmd.AddCommand(newSeasonCmd(opts, "finished", "Races already run this season", (*client.Client).GetFinishedRaces))
	rootCmd.AddCommand(newSeasonCmd(opts, "upcoming", "Races still to run this season", (*client.Client).GetUpcomingRaces))
	rootCmd.AddCommand(newSeasonCmd(opts, "regular-season", "Regular season races", (*client.Client).GetRegularSeasonRaces))
	rootCmd.AddCommand(newSeasonCmd(opts, "playoffs", "Playoff races", (*client.Client).GetPlayoffRaces))
	rootCmd.AddCommand(newSeasonCmd(opts, "standings", "Driver points standings", (*client.Client).GetPointsStandings))
	rootCmd.AddCommand(newSeasonCmd(opts, "owners-points", "Final owners points", (*client.Client).GetOwnersPoints))
	rootCmd.AddCommand(newSeasonCmd(opts, "manufacturer-points", "Final manufacturer points", (*client.Client).GetManufacturerPoints))
	rootCmd.AddCommand(newResultsCmd(opts))
	rootCmd.AddCommand(newPitDataCmd(opts))
	rootCmd.AddCommand(newDriversCmd(opts))
	rootCmd.AddCommand(newNextRaceCmd(opts))
	rootCmd.AddCommand(newCurrentRaceCmd(opts))

	return rootCmd
}

// newClient builds a client from the environment, then applies flag overrides.
func (o *rootOptions) newClient() (*client.Client, error) {
	return client.NewFromEnv(
		client.WithBaseURL(o.baseURL),
		client.WithDebugLogging(o.debug),
	)
}

// withTimeout bounds one command's requests by --timeout.
func (o *rootOptions) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, o.timeout)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
