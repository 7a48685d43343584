package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mt/efkctl/internal/tui"
)

// stubProgram swaps runProgram for the test and captures the model it would
// have launched.
func stubProgram(t *testing.T, runErr error) *tea.Model {
	t.Helper()
	var got tea.Model
	orig := runProgram
	runProgram = func(m tea.Model) error {
		got = m
		return runErr
	}
	t.Cleanup(func() { runProgram = orig })
	return &got
}

func TestWatch_LaunchesUI(t *testing.T) {
	stubCluster(t, &fakeCluster{})
	got := stubProgram(t, nil)

	var errw strings.Builder
	code := runWatch([]string{"--interval", "5s"}, &errw)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr: %s)", code, errw.String())
	}
	if _, ok := (*got).(*tui.App); !ok {
		t.Errorf("launched model = %T, want *tui.App", *got)
	}
	if errw.Len() != 0 {
		t.Errorf("stderr should be empty, got %q", errw.String())
	}
}

func TestWatch_BadFlagValue(t *testing.T) {
	count := stubCluster(t, &fakeCluster{})

	var errw strings.Builder
	code := runWatch([]string{"--interval", "bogus"}, &errw)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(errw.String(), "usage: efkctl watch") {
		t.Errorf("stderr should contain usage, got %q", errw.String())
	}
	if *count != 0 {
		t.Errorf("no cluster command should run with bad flags, got %d constructions", *count)
	}
}

func TestWatch_RejectsPositionalArguments(t *testing.T) {
	count := stubCluster(t, &fakeCluster{})

	var errw strings.Builder
	code := runWatch([]string{"extra"}, &errw)
	if code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if !strings.Contains(errw.String(), `unexpected argument "extra"`) {
		t.Errorf("stderr = %q, want unexpected argument message", errw.String())
	}
	if *count != 0 {
		t.Errorf("no cluster command should run with extra arguments, got %d constructions", *count)
	}
}

func TestWatch_IntervalTooShort(t *testing.T) {
	stubCluster(t, &fakeCluster{})
	got := stubProgram(t, nil)

	var errw strings.Builder
	code := runWatch([]string{"--interval", "500ms"}, &errw)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errw.String(), "interval must be at least 1s") {
		t.Errorf("stderr = %q, want interval validation error", errw.String())
	}
	if *got != nil {
		t.Errorf("UI must not launch with an invalid interval, got model %T", *got)
	}
}

func TestWatch_ProgramFailureExitsNonZero(t *testing.T) {
	stubCluster(t, &fakeCluster{})
	stubProgram(t, errors.New("tty unavailable"))

	var errw strings.Builder
	code := runWatch(nil, &errw)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errw.String(), "tty unavailable") {
		t.Errorf("stderr = %q, want the program error surfaced", errw.String())
	}
}
