package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mt/efkctl/internal/report"
	"github.com/mt/efkctl/internal/sampler"
)

// Environment configuration recognized by the sample command.
const (
	envInterval  = "EFKCTL_INTERVAL"
	envNamespace = "EFKCTL_NAMESPACE"
	envShowNodes = "EFKCTL_SHOW_NODES"
	envSortCol   = "EFKCTL_SORT_COL"
	envDebug     = "EFKCTL_DEBUG"
)

type sampleConfig struct {
	interval  time.Duration
	namespace string
	showNodes bool
	sortCol   int
	debug     bool
}

// parseSampleConfig reads the sample command's environment configuration.
// Unparsable or out-of-range numeric values fall back to their defaults.
func parseSampleConfig(getenv func(string) string) sampleConfig {
	cfg := sampleConfig{
		interval: sampler.DefaultInterval,
		sortCol:  1,
	}
	if v := getenv(envInterval); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.interval = time.Duration(secs) * time.Second
		}
	}
	cfg.namespace = getenv(envNamespace)
	cfg.showNodes = truthy(getenv(envShowNodes))
	if v := getenv(envSortCol); v != "" {
		if col, err := strconv.Atoi(v); err == nil && col >= 1 {
			cfg.sortCol = col
		}
	}
	cfg.debug = truthy(getenv(envDebug))
	return cfg
}

// truthy reports whether an environment toggle holds an affirmative value.
func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}

func sampleUsage(w io.Writer) {
	fmt.Fprintf(w, `usage: efkctl sample

Measures cluster-wide log production over one interval and prints the totals,
optionally with a per-node table. Takes no arguments; configuration comes from
the environment:

  EFKCTL_INTERVAL    sampling window in seconds (default %d)
  EFKCTL_NAMESPACE   namespace holding the log-collecting agents
                     (default %s)
  EFKCTL_SHOW_NODES  emit the per-node table when set to 1/true/yes/on
  EFKCTL_SORT_COL    1-indexed per-node table sort column (default 1;
                     columns 1-6 sort numerically, above 6 lexically)
  EFKCTL_DEBUG       trace every cluster command when set to 1/true/yes/on

Table columns, in order: bytes, records, journal bytes, journal records,
file bytes, file records, node, role. Numeric columns are %d characters wide
and right-aligned; node is %d characters and role %d, both left-aligned.
`, int(sampler.DefaultInterval/time.Second), sampler.DefaultNamespace,
		report.WidthNumeric, report.WidthNode, report.WidthRole)
}

// runSample executes one sampling pass and prints the report. Any argument
// prints usage and exits 0.
func runSample(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		sampleUsage(stdout)
		return 0
	}

	cfg := parseSampleConfig(getenv)

	var debugf func(string, ...any)
	if cfg.debug {
		debugf = func(format string, args ...any) {
			fmt.Fprintf(stderr, "debug: "+format+"\n", args...)
		}
	}

	c, err := newCluster(debugf)
	if err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return 1
	}
	s, err := sampler.New(c, sampler.Config{
		Interval:  cfg.interval,
		Namespace: cfg.namespace,
		Debugf:    debugf,
	})
	if err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return 1
	}

	res, err := s.Run(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return exitCode(err)
	}

	rc := report.Config{ShowNodes: cfg.showNodes, SortCol: cfg.sortCol}
	if err := report.Write(stdout, res.Aggregates, res.Interval, res.SampledAt, rc); err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return 1
	}
	return 0
}
