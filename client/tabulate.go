package client

// Tabulate converts any operation's records into a Frame using the client's
// FrameBuilder. Cell values are the record values, unchanged.
func (c *Client) Tabulate(rows []Record) (*Frame, error) {
	records := make([]map[string]any, len(rows))
	for i, r := range rows {
		records[i] = r
	}
	return c.frames.FromRecords(records)
}

// TabulateRace is Tabulate for a single race, e.g. the result of GetNextRace.
func (c *Client) TabulateRace(r Race) (*Frame, error) {
	return c.Tabulate([]Record{r})
}
