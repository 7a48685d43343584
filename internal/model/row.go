package model

import "sort"

// NodeRow holds display-ready data for a single row in the per-node table,
// fields ordered as the columns print (1-indexed: bytes, records, journal
// bytes, journal records, file bytes, file records, node, role).
type NodeRow struct {
	Bytes          int64
	Records        int64
	JournalBytes   int64
	JournalRecords int64
	FileBytes      int64
	FileRecords    int64
	Node           string
	Role           string
}

// Rows flattens aggregates into table rows ordered by node name, so the
// default rendering is deterministic regardless of map iteration order.
func Rows(aggs map[string]*NodeAggregate) []NodeRow {
	rows := make([]NodeRow, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, NodeRow{
			Bytes:          agg.Bytes,
			Records:        agg.Records,
			JournalBytes:   agg.JournalBytes,
			JournalRecords: agg.JournalRecords,
			FileBytes:      agg.FileBytes,
			FileRecords:    agg.FileRecords,
			Node:           agg.Node,
			Role:           agg.Role,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Node < rows[j].Node })
	return rows
}
