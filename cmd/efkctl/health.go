package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mt/efkctl/internal/esutil"
	"github.com/mt/efkctl/internal/format"
	"github.com/mt/efkctl/internal/sampler"
)

// runHealth prints one line of Elasticsearch cluster health. Exits non-zero
// when the cluster reports red or cannot be queried.
func runHealth(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(stderr, "efkctl: health takes no arguments")
		return 2
	}

	c, err := newCluster(nil)
	if err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return 1
	}

	es := esutil.NewClient(c, sampler.DefaultNamespace)
	h, err := es.GetHealth(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return exitCode(err)
	}

	fmt.Fprintf(stdout, "status: %s  nodes: %d  active shards: %s\n",
		h.Status, h.Nodes, format.FormatNumber(h.ActiveShards))
	if h.Status == "red" {
		return 1
	}
	return 0
}
