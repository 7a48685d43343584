package cluster

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePodLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Pod
	}{
		{
			name: "single pod",
			in:   "fluentd-4fz2w\topenshift-logging\tnode-1.example.com\n",
			want: []Pod{{Name: "fluentd-4fz2w", Namespace: "openshift-logging", Node: "node-1.example.com"}},
		},
		{
			name: "multiple pods",
			in: "fluentd-4fz2w\topenshift-logging\tnode-1\n" +
				"fluentd-9xk1p\topenshift-logging\tnode-2\n",
			want: []Pod{
				{Name: "fluentd-4fz2w", Namespace: "openshift-logging", Node: "node-1"},
				{Name: "fluentd-9xk1p", Namespace: "openshift-logging", Node: "node-2"},
			},
		},
		{
			name: "unscheduled pod has empty node",
			in:   "pending-pod\tdefault\t\n",
			want: []Pod{{Name: "pending-pod", Namespace: "default", Node: ""}},
		},
		{
			name: "blank lines skipped",
			in:   "\npod-a\tns\tnode\n\n",
			want: []Pod{{Name: "pod-a", Namespace: "ns", Node: "node"}},
		},
		{
			name: "empty output",
			in:   "",
			want: nil,
		},
		{
			name: "malformed line skipped",
			in:   "garbage-without-tabs\npod-a\tns\tnode\n",
			want: []Pod{{Name: "pod-a", Namespace: "ns", Node: "node"}},
		},
		{
			name: "carriage returns stripped",
			in:   "pod-a\tns\tnode\r\n",
			want: []Pod{{Name: "pod-a", Namespace: "ns", Node: "node"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parsePodLines([]byte(tc.in))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parsePodLines(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseLabelLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{
			name: "role labels",
			in: "kubernetes.io/hostname=node-1\n" +
				"node-role.kubernetes.io/worker=\n" +
				"kubernetes.io/role=worker\n",
			want: map[string]string{
				"kubernetes.io/hostname":         "node-1",
				"node-role.kubernetes.io/worker": "",
				"kubernetes.io/role":             "worker",
			},
		},
		{
			name: "value containing equals sign",
			in:   "foo=a=b\n",
			want: map[string]string{"foo": "a=b"},
		},
		{
			name: "empty output",
			in:   "",
			want: map[string]string{},
		},
		{
			name: "lines without separator skipped",
			in:   "noseparator\nok=1\n",
			want: map[string]string{"ok": "1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseLabelLines([]byte(tc.in))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseLabelLines(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestExitError_Error(t *testing.T) {
	e := &ExitError{Cmd: "oc exec -n ns pod -- true", Stderr: "error: pod not found", Err: errors.New("exit status 1")}
	want := "oc exec -n ns pod -- true: error: pod not found"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noStderr := &ExitError{Cmd: "oc get pods", Err: errors.New("exit status 1")}
	if got := noStderr.Error(); got != "oc get pods: exit status 1" {
		t.Errorf("Error() = %q", got)
	}
}

func TestExitError_ExitCodeUnknown(t *testing.T) {
	// Only a real *exec.ExitError carries a status; anything else reports -1.
	e := &ExitError{Cmd: "oc get pods", Err: errors.New("signal: killed")}
	if got := e.ExitCode(); got != -1 {
		t.Errorf("ExitCode() = %d, want -1", got)
	}
}

func TestNewOC_PinnedPath(t *testing.T) {
	c, err := NewOC(Config{Path: "/usr/local/bin/oc"})
	if err != nil {
		t.Fatalf("NewOC: %v", err)
	}
	if c.path != "/usr/local/bin/oc" {
		t.Errorf("path = %q", c.path)
	}
}
