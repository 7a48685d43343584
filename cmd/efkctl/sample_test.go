package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mt/efkctl/internal/cluster"
)

func mapGetenv(env map[string]string) func(string) string {
	return func(k string) string { return env[k] }
}

func TestParseSampleConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want sampleConfig
	}{
		{
			name: "defaults",
			env:  nil,
			want: sampleConfig{interval: 30 * time.Second, sortCol: 1},
		},
		{
			name: "interval in seconds",
			env:  map[string]string{"EFKCTL_INTERVAL": "45"},
			want: sampleConfig{interval: 45 * time.Second, sortCol: 1},
		},
		{
			name: "unparsable interval falls back",
			env:  map[string]string{"EFKCTL_INTERVAL": "abc"},
			want: sampleConfig{interval: 30 * time.Second, sortCol: 1},
		},
		{
			name: "non-positive interval falls back",
			env:  map[string]string{"EFKCTL_INTERVAL": "0"},
			want: sampleConfig{interval: 30 * time.Second, sortCol: 1},
		},
		{
			name: "namespace override",
			env:  map[string]string{"EFKCTL_NAMESPACE": "logging-dev"},
			want: sampleConfig{interval: 30 * time.Second, namespace: "logging-dev", sortCol: 1},
		},
		{
			name: "show nodes and sort column",
			env:  map[string]string{"EFKCTL_SHOW_NODES": "true", "EFKCTL_SORT_COL": "7"},
			want: sampleConfig{interval: 30 * time.Second, showNodes: true, sortCol: 7},
		},
		{
			name: "sort column below one falls back",
			env:  map[string]string{"EFKCTL_SORT_COL": "0"},
			want: sampleConfig{interval: 30 * time.Second, sortCol: 1},
		},
		{
			name: "debug",
			env:  map[string]string{"EFKCTL_DEBUG": "yes"},
			want: sampleConfig{interval: 30 * time.Second, sortCol: 1, debug: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSampleConfig(mapGetenv(tt.env))
			if got != tt.want {
				t.Errorf("parseSampleConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", "TRUE", "yes", "Y", "on"} {
		if !truthy(v) {
			t.Errorf("truthy(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"", "0", "false", "no", "off", "2", "enabled"} {
		if truthy(v) {
			t.Errorf("truthy(%q) = true, want false", v)
		}
	}
}

func TestSample_AnyArgumentPrintsUsage(t *testing.T) {
	count := stubCluster(t, &fakeCluster{})

	var out, errw strings.Builder
	code := runSample([]string{"--help"}, mapGetenv(nil), &out, &errw)
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "usage: efkctl sample") {
		t.Errorf("stdout should contain usage, got %q", out.String())
	}
	if !strings.Contains(out.String(), "EFKCTL_INTERVAL") {
		t.Errorf("usage should document the environment, got %q", out.String())
	}
	if *count != 0 {
		t.Errorf("no cluster command should run in usage mode, got %d constructions", *count)
	}
}

// sampleFixtureCluster fakes one node producing a 56-byte two-entry journal
// and a 6-byte three-line pod log, and records the journalctl window used.
func sampleFixtureCluster() (*fakeCluster, *[]string) {
	journal := "__CURSOR=s=1\nMESSAGE=hello\n\n__CURSOR=s=2\nMESSAGE=world\n\n"
	podLogs := "a\nb\nc\n"

	var journalCmd []string
	fc := &fakeCluster{
		ListPodsFn: func(ctx context.Context, namespace, selector string) ([]cluster.Pod, error) {
			if selector == "component=fluentd" {
				return []cluster.Pod{{Name: "fluentd-x7k2p", Namespace: namespace, Node: "node-1"}}, nil
			}
			return []cluster.Pod{{Name: "app-1", Namespace: "demo", Node: "node-1"}}, nil
		},
		ExecInPodFn: func(ctx context.Context, namespace, pod, container string, command ...string) ([]byte, error) {
			journalCmd = command
			return []byte(journal), nil
		},
		GetPodLogsSinceFn: func(ctx context.Context, namespace, pod string, since time.Duration) ([]byte, error) {
			return []byte(podLogs), nil
		},
		GetNodeLabelsFn: func(ctx context.Context, node string) (map[string]string, error) {
			return map[string]string{"node-role.kubernetes.io/worker": ""}, nil
		},
	}
	return fc, &journalCmd
}

func TestSample_PrintsReport(t *testing.T) {
	fc, journalCmd := sampleFixtureCluster()
	stubCluster(t, fc)

	env := map[string]string{"EFKCTL_SHOW_NODES": "1"}
	var out, errw strings.Builder
	code := runSample(nil, mapGetenv(env), &out, &errw)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, errw.String())
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("report has %d lines, want 5:\n%s", len(lines), out.String())
	}

	// Per-node row: 56+6 bytes, 2+3 records, split by source.
	row := strings.Fields(lines[1])
	want := []string{"62", "5", "56", "2", "6", "3", "node-1", "worker"}
	if len(row) != len(want) {
		t.Fatalf("node row = %v, want %v", row, want)
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("node row field %d = %q, want %q", i, row[i], want[i])
		}
	}

	if lines[2] != "nodes: 1" {
		t.Errorf("node count line = %q, want \"nodes: 1\"", lines[2])
	}

	// Totals over the default 30s window, truncated integer division.
	totals := strings.Fields(lines[4])
	wantTotals := []string{"12", "2", "0", "1", "0", "0", "0"}
	if len(totals) != len(wantTotals)+1 {
		t.Fatalf("totals row = %v, want %v plus a timestamp", totals, wantTotals)
	}
	for i := range wantTotals {
		if totals[i] != wantTotals[i] {
			t.Errorf("totals field %d = %q, want %q", i, totals[i], wantTotals[i])
		}
	}
	if _, err := time.Parse(time.RFC3339, totals[len(totals)-1]); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", totals[len(totals)-1], err)
	}

	// The sampling window reaches the in-container journal command.
	if len(*journalCmd) == 0 || (*journalCmd)[0] != "journalctl" {
		t.Fatalf("journal command = %v, want journalctl invocation", *journalCmd)
	}
	joined := strings.Join(*journalCmd, " ")
	if !strings.Contains(joined, "-S -30s") {
		t.Errorf("journal command %q should cover the trailing 30s window", joined)
	}
}

func TestSample_IntervalReachesCollector(t *testing.T) {
	fc, journalCmd := sampleFixtureCluster()
	stubCluster(t, fc)

	env := map[string]string{"EFKCTL_INTERVAL": "10"}
	var out, errw strings.Builder
	if code := runSample(nil, mapGetenv(env), &out, &errw); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, errw.String())
	}
	if joined := strings.Join(*journalCmd, " "); !strings.Contains(joined, "-S -10s") {
		t.Errorf("journal command %q should cover the trailing 10s window", joined)
	}
}

func TestSample_TotalsOnlyByDefault(t *testing.T) {
	fc, _ := sampleFixtureCluster()
	stubCluster(t, fc)

	var out, errw strings.Builder
	if code := runSample(nil, mapGetenv(nil), &out, &errw); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, errw.String())
	}
	if strings.Contains(out.String(), "NODE") {
		t.Errorf("per-node table should be off by default:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "nodes: 1") {
		t.Errorf("node count should still print:\n%s", out.String())
	}
}

func TestSample_ZeroRecordsFailsLoudly(t *testing.T) {
	// Discovery finds nothing, so the pass collects zero records.
	stubCluster(t, &fakeCluster{})

	var out, errw strings.Builder
	code := runSample(nil, mapGetenv(nil), &out, &errw)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(out.String(), "nodes: 0") {
		t.Errorf("stdout should report the node count, got %q", out.String())
	}
	if strings.Contains(out.String(), "AVG-REC-B") {
		t.Errorf("totals must not print without records:\n%s", out.String())
	}
	if !strings.Contains(errw.String(), "no records collected") {
		t.Errorf("stderr = %q, want the undefined-average error", errw.String())
	}
}

func TestSample_DebugTraceGoesToStderr(t *testing.T) {
	fc, _ := sampleFixtureCluster()
	stubCluster(t, fc)

	env := map[string]string{"EFKCTL_DEBUG": "1"}
	var out, errw strings.Builder
	if code := runSample(nil, mapGetenv(env), &out, &errw); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, errw.String())
	}
	if !strings.Contains(errw.String(), "debug: discovery: 1 agent pods, 1 cluster pods") {
		t.Errorf("stderr = %q, want discovery trace", errw.String())
	}
	if strings.Contains(out.String(), "debug:") {
		t.Errorf("stdout must stay clean of traces:\n%s", out.String())
	}
}
