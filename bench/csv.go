// CSV row encoding for benchmark records. File handling belongs to the
// caller; this is only the format both sides agree on:
//
//	vertices,edges,algorithm,time_ms,ok
//
// with time_ms fixed to 3 decimal places and ok rendered as 0/1.

package bench

import (
	"fmt"
	"io"
)

// csvHeader is the fixed first row of every benchmark CSV.
const csvHeader = "vertices,edges,algorithm,time_ms,ok"

// WriteCSV writes the header and one row per record to w.
func WriteCSV(w io.Writer, records []Record) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("bench: write csv header: %w", err)
	}
	for i, r := range records {
		ok := 0
		if r.OK {
			ok = 1
		}
		if _, err := fmt.Fprintf(w, "%d,%d,%s,%.3f,%d\n",
			r.Vertices, r.Edges, r.Algorithm, r.TimeMS, ok); err != nil {
			return fmt.Errorf("bench: write csv row %d: %w", i, err)
		}
	}

	return nil
}
