package executor

import (
	"errors"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, 0},
		{"plain error has no status", errors.New("executable not found"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMockExecutorRecordsCalls(t *testing.T) {
	mock := &MockExecutor{}

	if _, err := mock.Execute("docker", "--version"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if err := mock.ExecuteInDir("/tmp/blog", "docker", "compose", "up", "-d"); err != nil {
		t.Fatalf("ExecuteInDir failed: %v", err)
	}

	if len(mock.Calls) != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Name != "docker" || mock.Calls[0].Dir != "" {
		t.Errorf("unexpected first call: %+v", mock.Calls[0])
	}
	if mock.Calls[1].Dir != "/tmp/blog" {
		t.Errorf("expected dir /tmp/blog, got %q", mock.Calls[1].Dir)
	}
}

func TestMockExecutorDefaults(t *testing.T) {
	mock := &MockExecutor{}

	path, err := mock.LookPath("docker")
	if err != nil {
		t.Fatalf("LookPath failed: %v", err)
	}
	if path != "/usr/bin/docker" {
		t.Errorf("unexpected default path %q", path)
	}
}
