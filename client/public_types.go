package client

import (
	"github.com/cupstats/nascar-client/client/internal/frame"
	"github.com/cupstats/nascar-client/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	Series = types.Series

	// Records
	Record                = types.Record
	Race                  = types.Race
	RaceResultRow         = types.RaceResultRow
	PointsStandingRow     = types.PointsStandingRow
	OwnerPointsRow        = types.OwnerPointsRow
	ManufacturerPointsRow = types.ManufacturerPointsRow
	DriverInfoRow         = types.DriverInfoRow
	PitStopRow            = types.PitStopRow

	// Tabular presentation
	Frame        = frame.Frame
	FrameBuilder = frame.Builder
)

const (
	SeriesCup     = types.SeriesCup
	SeriesXfinity = types.SeriesXfinity
	SeriesTruck   = types.SeriesTruck
)

// AllSeries lists Cup, Xfinity and Truck in API order.
var AllSeries = types.AllSeries

// SeasonQuery selects one series in one season. Zero fields default to the
// current year, resolved when the call is made, and the Cup series.
type SeasonQuery struct {
	Year   int
	Series Series
}

var (
	validateYear   = types.ValidateYear
	validateSeries = types.ValidateSeries
	validateRaceID = types.ValidateRaceID
)
