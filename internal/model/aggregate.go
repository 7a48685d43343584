package model

// RoleUnknown is reported for nodes whose role could not be determined.
const RoleUnknown = "unknown"

// NodeAggregate accumulates sampled log volume for a single node, split into
// journal and container-file contributions. Journal plus file always equals
// the node total.
type NodeAggregate struct {
	Node string
	Role string

	Bytes   int64
	Records int64

	JournalBytes   int64
	JournalRecords int64

	FileBytes   int64
	FileRecords int64
}

// Aggregate folds sample records into one NodeAggregate per node, keyed by the
// node each record was collected on. A zero-valued record still creates its
// node's entry. Nodes missing from the roles map get RoleUnknown.
func Aggregate(records []SampleRecord, roles map[string]string) map[string]*NodeAggregate {
	aggs := make(map[string]*NodeAggregate)
	for _, r := range records {
		agg, ok := aggs[r.Node]
		if !ok {
			role := roles[r.Node]
			if role == "" {
				role = RoleUnknown
			}
			agg = &NodeAggregate{Node: r.Node, Role: role}
			aggs[r.Node] = agg
		}

		agg.Bytes += r.Bytes
		agg.Records += r.Records

		switch r.Source {
		case SourceJournal:
			agg.JournalBytes += r.Bytes
			agg.JournalRecords += r.Records
		case SourceFile:
			agg.FileBytes += r.Bytes
			agg.FileRecords += r.Records
		}
	}
	return aggs
}
