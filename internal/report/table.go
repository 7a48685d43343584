// Package report renders the fixed-width tables produced by a sampling pass:
// an optional per-node breakdown and a cluster totals line with per-second
// rates. All numeric cells are right-aligned truncated integers.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/mt/efkctl/internal/model"
)

// Column widths, referenced by the usage text. The format strings below
// hardcode the same values and must stay in step.
const (
	WidthNumeric = 12
	WidthNode    = 40
	WidthRole    = 8
)

const (
	nodeHeaderFmt = "%12s %12s %12s %12s %12s %12s  %-40s %-8s\n"
	nodeRowFmt    = "%12d %12d %12d %12d %12d %12d  %-40s %-8s\n"

	totalsHeaderFmt = "%12s %12s %12s %12s %12s %12s %12s  %s\n"
	totalsRowFmt    = "%12d %12d %12d %12d %12d %12d %12d  %s\n"
)

// Config controls what Write emits and how the per-node table is ordered.
type Config struct {
	// ShowNodes enables the per-node table ahead of the totals.
	ShowNodes bool

	// SortCol is the 1-indexed output column the per-node table sorts by.
	// Zero means the default (column 1).
	SortCol int
}

// Write renders the report for one sampling pass. The node count always
// prints, even when the totals cannot be derived; a summary failure (for
// example zero records collected, leaving the average record size undefined)
// is returned after everything printable has been written.
func Write(w io.Writer, aggs map[string]*model.NodeAggregate, interval time.Duration, sampledAt time.Time, cfg Config) error {
	rows := model.Rows(aggs)

	if cfg.ShowNodes {
		col := cfg.SortCol
		if col == 0 {
			col = minSortColumn
		}
		SortRows(rows, col)
		writeNodeTable(w, rows)
	}

	fmt.Fprintf(w, "nodes: %d\n", len(rows))

	sum, err := model.Summarize(aggs, interval, sampledAt)
	if err != nil {
		return err
	}
	writeTotals(w, sum)
	return nil
}

func writeNodeTable(w io.Writer, rows []model.NodeRow) {
	fmt.Fprintf(w, nodeHeaderFmt,
		"BYTES", "RECORDS", "JOURNAL-B", "JOURNAL-R", "FILE-B", "FILE-R", "NODE", "ROLE")
	for _, r := range rows {
		fmt.Fprintf(w, nodeRowFmt,
			r.Bytes, r.Records, r.JournalBytes, r.JournalRecords, r.FileBytes, r.FileRecords, r.Node, r.Role)
	}
}

func writeTotals(w io.Writer, s model.RunSummary) {
	fmt.Fprintf(w, totalsHeaderFmt,
		"AVG-REC-B", "BYTES/S", "RECORDS/S", "JOURNAL-B/S", "JOURNAL-R/S", "FILE-B/S", "FILE-R/S", "TIME")
	fmt.Fprintf(w, totalsRowFmt,
		s.AvgRecordBytes, s.BytesPerSec, s.RecordsPerSec,
		s.JournalBytesPerSec, s.JournalRecordsPerSec,
		s.FileBytesPerSec, s.FileRecordsPerSec,
		s.SampledAt.Format(time.RFC3339))
}
