package main

import (
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mt/efkctl/internal/sampler"
	"github.com/mt/efkctl/internal/tui"
)

// runProgram launches the Bubble Tea program. Tests swap this out.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// runWatch samples continuously in a full-screen terminal UI. The UI owns
// stdout, so only flag errors and diagnostics reach stderr.
func runWatch(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	interval := fs.Duration("interval", sampler.DefaultInterval, "sampling interval (e.g. 30s, 2m)")
	namespace := fs.String("namespace", sampler.DefaultNamespace, "namespace holding the log-collecting agents")
	debug := fs.Bool("debug", false, "trace every cluster command to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: efkctl watch [--interval 30s] [--namespace %s] [--debug]\n\n", sampler.DefaultNamespace)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "efkctl: unexpected argument %q\n", fs.Arg(0))
		fs.Usage()
		return 2
	}

	var debugf func(string, ...any)
	if *debug {
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
		Interval:  *interval,
		Namespace: *namespace,
		Debugf:    debugf,
	})
	if err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return 1
	}

	if err := runProgram(tui.NewApp(s, *interval, *namespace)); err != nil {
		fmt.Fprintf(stderr, "efkctl: %v\n", err)
		return 1
	}
	return 0
}
