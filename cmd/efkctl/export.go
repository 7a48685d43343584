package main

import (
	"context"
	"fmt"
	"io"

	"github.com/mt/efkctl/internal/esutil"
	"github.com/mt/efkctl/internal/kibana"
	"github.com/mt/efkctl/internal/sampler"
)

func exportUsage(w io.Writer) {
	fmt.Fprintf(w, `usage: efkctl export <username> [objects]

Exports a user's saved Kibana objects to standard output as the raw
pretty-printed search response.

arguments:
  username   Kibana user whose index is exported; the literal %q
             selects the shared %s index
  objects    comma-separated object types to export
             (default %q; allowed: config, dashboard,
             index-pattern, search, url, visualization)
`, kibana.SharedIndexUser, kibana.SharedIndex, kibana.DefaultObjectTypes)
}

// runExport streams one user's saved objects. A missing username prints usage
// and exits 1 before any cluster command is attempted.
func runExport(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		exportUsage(stderr)
		return 1
	}
	if len(args) > 2 {
		fmt.Fprintf(stderr, "efkctl: unexpected argument %q\n", args[2])
		exportUsage(stderr)
		return 1
	}

	username := args[0]
	objects := kibana.DefaultObjectTypes
	if len(args) == 2 {
		objects = args[1]
	}

	c, err := newCluster(nil)
	if err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return 1
	}

	exp := kibana.NewExporter(esutil.NewClient(c, sampler.DefaultNamespace))
	if err := exp.Export(context.Background(), stdout, username, objects); err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return exitCode(err)
	}
	return 0
}
