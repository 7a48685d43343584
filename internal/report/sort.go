package report

import (
	"sort"

	"github.com/mt/efkctl/internal/model"
)

// Sortable column indexes, matching the printed column order.
const (
	minSortColumn = 1
	maxSortColumn = 8

	// Columns above this index hold strings and sort lexically.
	lastNumericColumn = 6
)

// SortRows orders table rows by the 1-indexed output column. Columns 1-6 are
// numeric and sort ascending; columns above 6 sort lexically, so numeric-looking
// values there compare as strings ("10" before "9"). Ties break on node name.
// An out-of-range index is clamped to the nearest valid column.
func SortRows(rows []model.NodeRow, col int) {
	if col < minSortColumn {
		col = minSortColumn
	}
	if col > maxSortColumn {
		col = maxSortColumn
	}

	sort.Slice(rows, func(i, j int) bool {
		ri, rj := rows[i], rows[j]
		if col > lastNumericColumn {
			a, b := stringKey(ri, col), stringKey(rj, col)
			if a != b {
				return a < b
			}
		} else {
			a, b := numericKey(ri, col), numericKey(rj, col)
			if a != b {
				return a < b
			}
		}
		return ri.Node < rj.Node
	})
}

func numericKey(r model.NodeRow, col int) int64 {
	switch col {
	case 1:
		return r.Bytes
	case 2:
		return r.Records
	case 3:
		return r.JournalBytes
	case 4:
		return r.JournalRecords
	case 5:
		return r.FileBytes
	default:
		return r.FileRecords
	}
}

func stringKey(r model.NodeRow, col int) string {
	if col == 7 {
		return r.Node
	}
	return r.Role
}
