package sampler

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mt/efkctl/internal/cluster"
	"github.com/mt/efkctl/internal/model"
)

// collect fans out one goroutine per agent pod (journal) and one per cluster
// pod (container files), with no concurrency cap. Each goroutine owns exactly
// one slot of the results slice, so no locking is needed; the WaitGroup join
// is the single barrier before aggregation reads anything. A failed task
// leaves a zero-valued record in its slot, never an error. The iteration
// copies keep each goroutine bound to its own slot under pre-go1.22
// loop-variable semantics.
func (s *Sampler) collect(ctx context.Context, agents, pods []cluster.Pod) []model.SampleRecord {
	records := make([]model.SampleRecord, len(agents)+len(pods))

	var wg sync.WaitGroup
	for i, agent := range agents {
		i, agent := i, agent
		wg.Add(1)
		go func() {
			defer wg.Done()
			records[i] = s.collectJournal(ctx, agent)
		}()
	}
	for i, pod := range pods {
		i, pod := i, pod
		wg.Add(1)
		go func() {
			defer wg.Done()
			records[len(agents)+i] = s.collectPodLogs(ctx, pod)
		}()
	}
	wg.Wait()

	return records
}

// journalArgs is the in-container command dumping the trailing window of the
// node's journal in export format.
func journalArgs(interval time.Duration) []string {
	return []string{"journalctl", "-S", fmt.Sprintf("-%ds", int64(interval/time.Second)), "-o", "export"}
}

// collectJournal tails the agent's node journal through the agent pod and
// counts export-format entries and bytes.
func (s *Sampler) collectJournal(ctx context.Context, agent cluster.Pod) model.SampleRecord {
	rec := model.SampleRecord{
		Namespace: agent.Namespace,
		Pod:       agent.Name,
		Node:      agent.Node,
		Source:    model.SourceJournal,
	}

	out, err := s.cluster.ExecInPod(ctx, agent.Namespace, agent.Name, agentContainer, journalArgs(s.cfg.Interval)...)
	if err != nil {
		s.debugf("journal collection via %s: %v", agent.Name, err)
		return rec
	}

	rec.Records, rec.Bytes = countJournalExport(out)
	s.debugf("journal %s: %d records, %d bytes", agent.Node, rec.Records, rec.Bytes)
	return rec
}

// collectPodLogs fetches the pod's aggregated logs for the trailing window and
// counts lines and bytes.
func (s *Sampler) collectPodLogs(ctx context.Context, pod cluster.Pod) model.SampleRecord {
	rec := model.SampleRecord{
		Namespace: pod.Namespace,
		Pod:       pod.Name,
		Node:      pod.Node,
		Source:    model.SourceFile,
	}

	out, err := s.cluster.GetPodLogsSince(ctx, pod.Namespace, pod.Name, s.cfg.Interval)
	if err != nil {
		s.debugf("log collection for %s/%s: %v", pod.Namespace, pod.Name, err)
		return rec
	}

	rec.Records, rec.Bytes = countPodLogs(out)
	return rec
}

// countJournalExport counts entries and bytes in journalctl export output.
// Every entry opens with a __CURSOR= field, so entries are counted by their
// cursor lines; bytes cover the whole stream.
func countJournalExport(out []byte) (records, size int64) {
	if len(out) == 0 {
		return 0, 0
	}
	records = int64(bytes.Count(out, []byte("\n__CURSOR=")))
	if bytes.HasPrefix(out, []byte("__CURSOR=")) {
		records++
	}
	return records, int64(len(out))
}

// countPodLogs counts log lines and bytes in pod log output. A final line
// without a trailing newline still counts.
func countPodLogs(out []byte) (records, size int64) {
	if len(out) == 0 {
		return 0, 0
	}
	records = int64(bytes.Count(out, []byte("\n")))
	if out[len(out)-1] != '\n' {
		records++
	}
	return records, int64(len(out))
}
