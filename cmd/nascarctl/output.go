package main

import (
	"encoding/json"
	"io"

	"github.com/cupstats/nascar-client/client"
)

// writeRecords prints rows as indented JSON or, with --format table, as a
// text table built by the client's frame builder.
func writeRecords(w io.Writer, opts *rootOptions, c *client.Client, rows []client.Record) error {
	if opts.format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fr, err := c.Tabulate(rows)
	if err != nil {
		return err
	}
	if len(opts.columns) > 0 {
		if fr, err = fr.Select(opts.columns...); err != nil {
			return err
		}
	}
	return fr.Render(w)
}
