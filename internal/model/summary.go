package model

import (
	"fmt"
	"time"
)

// RunSummary holds cluster-wide totals and derived per-second rates for one
// sampling pass. Rates are integer, truncated toward zero, matching the
// accumulation semantics. Totals equal the sum over all NodeAggregates.
type RunSummary struct {
	Nodes int

	Bytes   int64
	Records int64

	JournalBytes   int64
	JournalRecords int64

	FileBytes   int64
	FileRecords int64

	AvgRecordBytes int64

	BytesPerSec          int64
	RecordsPerSec        int64
	JournalBytesPerSec   int64
	JournalRecordsPerSec int64
	FileBytesPerSec      int64
	FileRecordsPerSec    int64

	SampledAt time.Time
}

// Summarize folds per-node aggregates into cluster totals and derives rates by
// dividing each total by the interval length in whole seconds.
//
// Returns an error when:
//   - interval is shorter than one second (rate division needs a positive divisor)
//   - zero records were collected (the average record size is undefined)
func Summarize(aggs map[string]*NodeAggregate, interval time.Duration, now time.Time) (RunSummary, error) {
	secs := int64(interval / time.Second)
	if secs <= 0 {
		return RunSummary{}, fmt.Errorf("summarize: interval must be at least 1s, got %v", interval)
	}

	s := RunSummary{Nodes: len(aggs), SampledAt: now}
	for _, agg := range aggs {
		s.Bytes += agg.Bytes
		s.Records += agg.Records
		s.JournalBytes += agg.JournalBytes
		s.JournalRecords += agg.JournalRecords
		s.FileBytes += agg.FileBytes
		s.FileRecords += agg.FileRecords
	}

	if s.Records == 0 {
		return RunSummary{}, fmt.Errorf("summarize: no records collected from %d nodes, average record size is undefined", s.Nodes)
	}

	s.AvgRecordBytes = s.Bytes / s.Records
	s.BytesPerSec = s.Bytes / secs
	s.RecordsPerSec = s.Records / secs
	s.JournalBytesPerSec = s.JournalBytes / secs
	s.JournalRecordsPerSec = s.JournalRecords / secs
	s.FileBytesPerSec = s.FileBytes / secs
	s.FileRecordsPerSec = s.FileRecords / secs
	return s, nil
}
