package sampler

import (
	"context"
	"time"

	"github.com/mt/efkctl/internal/cluster"
)

// mockCluster implements cluster.Cluster for testing.
type mockCluster struct {
	ListPodsFn        func(ctx context.Context, namespace, selector string) ([]cluster.Pod, error)
	ExecInPodFn       func(ctx context.Context, namespace, pod, container string, command ...string) ([]byte, error)
	GetPodLogsSinceFn func(ctx context.Context, namespace, pod string, since time.Duration) ([]byte, error)
	GetNodeLabelsFn   func(ctx context.Context, node string) (map[string]string, error)
}

func (m *mockCluster) ListPods(ctx context.Context, namespace, selector string) ([]cluster.Pod, error) {
	if m.ListPodsFn != nil {
		return m.ListPodsFn(ctx, namespace, selector)
	}
	return nil, nil
}

func (m *mockCluster) ExecInPod(ctx context.Context, namespace, pod, container string, command ...string) ([]byte, error) {
	if m.ExecInPodFn != nil {
		return m.ExecInPodFn(ctx, namespace, pod, container, command...)
	}
	return nil, nil
}

func (m *mockCluster) GetPodLogsSince(ctx context.Context, namespace, pod string, since time.Duration) ([]byte, error) {
	if m.GetPodLogsSinceFn != nil {
		return m.GetPodLogsSinceFn(ctx, namespace, pod, since)
	}
	return nil, nil
}

func (m *mockCluster) GetNodeLabels(ctx context.Context, node string) (map[string]string, error) {
	if m.GetNodeLabelsFn != nil {
		return m.GetNodeLabelsFn(ctx, node)
	}
	return map[string]string{}, nil
}
