package cluster

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Field projections handed to the cluster CLI. jsonpath leaves missing fields
// empty (unscheduled pods have no nodeName); the go-template range over labels
// prints them as sorted key=value lines.
const (
	podListTemplate   = `jsonpath={range .items[*]}{.metadata.name}{"\t"}{.metadata.namespace}{"\t"}{.spec.nodeName}{"\n"}{end}`
	nodeLabelTemplate = `go-template={{range $k, $v := .metadata.labels}}{{$k}}={{$v}}{{"\n"}}{{end}}`
)

// Config holds configuration for OC.
type Config struct {
	// Path overrides the oc binary location. Empty means resolve it from PATH.
	Path string
	// Debugf, when set, receives one line per executed command.
	Debugf func(format string, args ...any)
}

// OC implements Cluster by shelling out to the oc binary with the caller's
// ambient login session.
type OC struct {
	path   string
	debugf func(format string, args ...any)
}

// NewOC constructs an OC client, resolving the binary from PATH unless the
// config pins a path.
func NewOC(cfg Config) (*OC, error) {
	path := cfg.Path
	if path == "" {
		p, err := exec.LookPath("oc")
		if err != nil {
			return nil, fmt.Errorf("oc binary not found in PATH: %w", err)
		}
		path = p
	}
	return &OC{path: path, debugf: cfg.Debugf}, nil
}

// run executes oc with the given arguments and returns its stdout. Stdout is
// returned even on failure so partial output can still be streamed through.
func (c *OC) run(ctx context.Context, args ...string) ([]byte, error) {
	c.trace("oc %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, c.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	switch err.(type) {
	case nil:
		return stdout.Bytes(), nil
	case *exec.ExitError:
		return stdout.Bytes(), &ExitError{
			Cmd:    "oc " + strings.Join(args, " "),
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	default:
		return stdout.Bytes(), fmt.Errorf("exec %s: %w", c.path, err)
	}
}

func (c *OC) trace(format string, args ...any) {
	if c.debugf != nil {
		c.debugf(format, args...)
	}
}

// ListPods lists pods via `oc get pods` with a jsonpath projection of name,
// namespace and node assignment.
func (c *OC) ListPods(ctx context.Context, namespace, selector string) ([]Pod, error) {
	args := []string{"get", "pods"}
	if namespace == "" {
		args = append(args, "--all-namespaces")
	} else {
		args = append(args, "-n", namespace)
	}
	if selector != "" {
		args = append(args, "-l", selector)
	}
	args = append(args, "-o", podListTemplate)

	out, err := c.run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPods: %w", err)
	}
	return parsePodLines(out), nil
}

// ExecInPod runs the command inside the named container via `oc exec`.
func (c *OC) ExecInPod(ctx context.Context, namespace, pod, container string, command ...string) ([]byte, error) {
	args := append([]string{"exec", "-n", namespace, pod, "-c", container, "--"}, command...)
	return c.run(ctx, args...)
}

// GetPodLogsSince fetches the pod's logs across all containers for the
// trailing window via `oc logs --since`.
func (c *OC) GetPodLogsSince(ctx context.Context, namespace, pod string, since time.Duration) ([]byte, error) {
	args := []string{
		"logs", "-n", namespace, pod,
		"--all-containers=true",
		fmt.Sprintf("--since=%ds", int64(since/time.Second)),
	}
	return c.run(ctx, args...)
}

// GetNodeLabels reads the node's labels via a go-template projection.
func (c *OC) GetNodeLabels(ctx context.Context, node string) (map[string]string, error) {
	out, err := c.run(ctx, "get", "node", node, "-o", nodeLabelTemplate)
	if err != nil {
		return nil, fmt.Errorf("GetNodeLabels %s: %w", node, err)
	}
	return parseLabelLines(out), nil
}

// parsePodLines decodes the tab-separated pod projection. Lines with fewer
// than two fields are skipped; a missing third field leaves Node empty.
func parsePodLines(out []byte) []Pod {
	var pods []Pod
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}
		p := Pod{Name: fields[0], Namespace: fields[1]}
		if len(fields) > 2 {
			p.Node = fields[2]
		}
		pods = append(pods, p)
	}
	return pods
}

// parseLabelLines decodes key=value label lines.
func parseLabelLines(out []byte) map[string]string {
	labels := make(map[string]string)
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok || k == "" {
			continue
		}
		labels[k] = v
	}
	return labels
}
