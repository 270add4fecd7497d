package types

import "encoding/json"

// ------------------------------
// Response envelopes
// ------------------------------

// RaceList is the race_list_basic.json document: one bucket per series.
// Buckets are kept raw so a malformed bucket only fails the series asked for.
type RaceList map[string]json.RawMessage

// DriversResponse wraps the drivers.json roster.
type DriversResponse struct {
	Response *[]Record `json:"response"`
}
