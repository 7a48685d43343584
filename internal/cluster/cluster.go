package cluster

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// Pod is the projection of a pod that callers need: identity plus node assignment.
// Node is empty for pods that have not been scheduled yet.
type Pod struct {
	Name      string
	Namespace string
	Node      string
}

// Cluster defines the interface for the cluster CLI operations efkctl uses.
// The session is ambient: whoever runs efkctl is already logged in.
type Cluster interface {
	// ListPods returns pods in the namespace matching the label selector.
	// An empty namespace means all namespaces; an empty selector matches everything.
	ListPods(ctx context.Context, namespace, selector string) ([]Pod, error)
	// ExecInPod runs a command synchronously inside the named container and
	// returns its stdout. A non-zero exit comes back as an *ExitError.
	ExecInPod(ctx context.Context, namespace, pod, container string, command ...string) ([]byte, error)
	// GetPodLogsSince returns the pod's aggregated log output from the last
	// `since` of wall clock, across all its containers.
	GetPodLogsSince(ctx context.Context, namespace, pod string, since time.Duration) ([]byte, error)
	// GetNodeLabels returns the node's metadata labels.
	GetNodeLabels(ctx context.Context, node string) (map[string]string, error)
}

// ExitError wraps a non-zero exit of the cluster CLI so callers can surface
// the collaborator's own status code instead of inventing one.
type ExitError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s: %s", e.Cmd, e.Stderr)
	}
	return fmt.Sprintf("%s: %v", e.Cmd, e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the underlying process exit status, or -1 when unknown.
func (e *ExitError) ExitCode() int {
	var ee *exec.ExitError
	if errors.As(e.Err, &ee) {
		return ee.ExitCode()
	}
	return -1
}
