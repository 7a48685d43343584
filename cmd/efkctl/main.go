package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mt/efkctl/internal/cluster"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches the subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	switch args[0] {
	case "export":
		return runExport(args[1:], stdout, stderr)
	case "sample":
		return runSample(args[1:], os.Getenv, stdout, stderr)
	case "watch":
		return runWatch(args[1:], stderr)
	case "health":
		return runHealth(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "efkctl: unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: efkctl <command> [arguments]

commands:
  export <username> [objects]   export a user's saved Kibana objects as raw JSON
  sample                        measure cluster log rates once and print a report
  watch [--interval 30s] [--namespace ns] [--debug]
                                continuously sample in a terminal UI
  health                        print Elasticsearch cluster health
  help                          show this help
`)
}

// newCluster builds the oc-backed cluster client. Tests swap this out.
var newCluster = func(debugf func(string, ...any)) (cluster.Cluster, error) {
	return cluster.NewOC(cluster.Config{Debugf: debugf})
}

// exitCode maps an error to the exit status to propagate: the cluster
// command's own exit code when the chain carries one, 1 otherwise.
func exitCode(err error) int {
	var exit *cluster.ExitError
	if errors.As(err, &exit) {
		if code := exit.ExitCode(); code > 0 {
			return code
		}
	}
	return 1
}
