package sampler

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mt/efkctl/internal/cluster"
	"github.com/mt/efkctl/internal/model"
)

const (
	// DefaultNamespace is where the log-collecting agent pods live.
	DefaultNamespace = "openshift-logging"
	// DefaultInterval is the sampling window used when none is configured.
	DefaultInterval = 30 * time.Second

	// agentSelector matches the per-node fluentd agent pods.
	agentSelector  = "component=fluentd"
	agentContainer = "fluentd"
)

// Config controls a sampling pass.
type Config struct {
	// Interval is the trailing window each collection task measures.
	// Must be at least one second; fractions of a second are dropped.
	Interval time.Duration
	// Namespace holds the agent pods. Empty means DefaultNamespace.
	Namespace string
	// Debugf, when set, receives a trace line for every phase.
	Debugf func(format string, args ...any)
}

// Sampler measures cluster-wide log production over a fixed window, split
// into journal and container-file contributions per node.
type Sampler struct {
	cluster cluster.Cluster
	cfg     Config
}

// New constructs a Sampler. Returns an error if the interval is shorter than
// one second (the per-second rate division needs a positive divisor).
func New(c cluster.Cluster, cfg Config) (*Sampler, error) {
	if cfg.Interval < time.Second {
		return nil, fmt.Errorf("sampler: interval must be at least 1s, got %v", cfg.Interval)
	}
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	return &Sampler{cluster: c, cfg: cfg}, nil
}

// Result holds one completed sampling pass.
type Result struct {
	Records    []model.SampleRecord
	Aggregates map[string]*model.NodeAggregate
	Interval   time.Duration
	SampledAt  time.Time
}

// Summary derives the cluster totals and per-second rates for the pass.
func (r *Result) Summary() (model.RunSummary, error) {
	return model.Summarize(r.Aggregates, r.Interval, r.SampledAt)
}

// Run executes a single pass: discover agent and workload pods, collect
// journal and container logs in parallel, classify the nodes encountered, and
// fold every sample into per-node aggregates. Discovery failures abort the
// run; collection failures contribute zero and the pass continues.
func (s *Sampler) Run(ctx context.Context) (*Result, error) {
	var (
		agents []cluster.Pod
		pods   []cluster.Pod
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		agents, err = s.cluster.ListPods(gctx, s.cfg.Namespace, agentSelector)
		if err != nil {
			return fmt.Errorf("discover agent pods: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		pods, err = s.cluster.ListPods(gctx, "", "")
		if err != nil {
			return fmt.Errorf("discover cluster pods: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.debugf("discovery: %d agent pods, %d cluster pods", len(agents), len(pods))

	records := s.collect(ctx, agents, pods)
	roles := s.classify(ctx, records)

	return &Result{
		Records:    records,
		Aggregates: model.Aggregate(records, roles),
		Interval:   s.cfg.Interval,
		SampledAt:  time.Now(),
	}, nil
}

func (s *Sampler) debugf(format string, args ...any) {
	if s.cfg.Debugf != nil {
		s.cfg.Debugf(format, args...)
	}
}
