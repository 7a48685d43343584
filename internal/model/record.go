package model

// SourceType distinguishes where a log sample was collected from.
type SourceType string

const (
	// SourceJournal marks samples read from a node's system journal.
	SourceJournal SourceType = "journal"
	// SourceFile marks samples read from container log files via the pod log endpoint.
	SourceFile SourceType = "file"
)

// SampleRecord holds the raw result of a single collection task: how many log
// records and bytes one pod produced over the sampling window. A failed or
// empty collection yields a zero-valued record, never an omission, so the
// node it belongs to stays visible downstream.
type SampleRecord struct {
	Namespace string
	Pod       string
	Node      string
	Source    SourceType
	Records   int64
	Bytes     int64
}
