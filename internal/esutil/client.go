package esutil

import (
	"context"
	"fmt"

	"github.com/mt/efkctl/internal/cluster"
)

const (
	// esPodSelector matches the Elasticsearch master-eligible pods the query
	// utility can run in.
	esPodSelector = "es-node-master=true"
	esContainer   = "elasticsearch"
	queryUtility  = "es_util"
)

// Querier runs a query path against the logging stack's Elasticsearch and
// returns the raw response body.
type Querier interface {
	Query(ctx context.Context, path string) ([]byte, error)
}

// Client implements Querier by exec-ing the in-container query utility through
// the cluster CLI.
type Client struct {
	cluster   cluster.Cluster
	namespace string
}

// NewClient returns a Client querying through Elasticsearch pods in the given
// namespace.
func NewClient(c cluster.Cluster, namespace string) *Client {
	return &Client{cluster: c, namespace: namespace}
}

// Query execs `es_util --query=<path>` inside one Elasticsearch pod and
// returns its stdout. Partial stdout is returned alongside the error when the
// utility exits non-zero.
func (c *Client) Query(ctx context.Context, path string) ([]byte, error) {
	pod, err := c.findPod(ctx)
	if err != nil {
		return nil, err
	}
	return c.cluster.ExecInPod(ctx, pod.Namespace, pod.Name, esContainer, queryUtility, "--query="+path)
}

// findPod picks the first pod matching the Elasticsearch selector.
func (c *Client) findPod(ctx context.Context) (cluster.Pod, error) {
	pods, err := c.cluster.ListPods(ctx, c.namespace, esPodSelector)
	if err != nil {
		return cluster.Pod{}, fmt.Errorf("list elasticsearch pods: %w", err)
	}
	if len(pods) == 0 {
		return cluster.Pod{}, fmt.Errorf("no elasticsearch pod matches %q in namespace %s", esPodSelector, c.namespace)
	}
	return pods[0], nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
