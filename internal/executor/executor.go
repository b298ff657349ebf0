// Package executor wraps subprocess execution behind an interface so the
// compose orchestrator and CLI commands can be tested without a container
// runtime installed.
package executor

import (
	"os"
	"os/exec"
)

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command and returns its combined output
	Execute(name string, args ...string) ([]byte, error)

	// ExecuteInDir runs a command in the given working directory with
	// stdout/stderr connected to the terminal, so subprocess output
	// reaches the user untouched
	ExecuteInDir(dir, name string, args ...string) error

	// ExecuteInDirOutput runs a command in the given working directory
	// and returns its combined output. Standalone docker-compose resolves
	// services from the compose file in the current directory, so even
	// read-only commands must run inside the site directory
	ExecuteInDirOutput(dir, name string, args ...string) ([]byte, error)

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined output
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// ExecuteInDir runs a command in dir, streaming output to the terminal
func (e *SystemExecutor) ExecuteInDir(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ExecuteInDirOutput runs a command in dir and returns combined output
func (e *SystemExecutor) ExecuteInDirOutput(dir, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ExitCode extracts the subprocess exit code from an execution error.
// Returns 1 for errors that carry no exit status (e.g. binary not found),
// 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return 1
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc            func(name string, args ...string) ([]byte, error)
	ExecuteInDirFunc       func(dir, name string, args ...string) error
	ExecuteInDirOutputFunc func(dir, name string, args ...string) ([]byte, error)
	LookPathFunc           func(file string) (string, error)
	Calls                  []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Dir  string
	Name string
	Args []string
}

// Execute calls the mock function
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// ExecuteInDir calls the mock function
func (m *MockExecutor) ExecuteInDir(dir, name string, args ...string) error {
	m.Calls = append(m.Calls, CommandCall{Dir: dir, Name: name, Args: args})
	if m.ExecuteInDirFunc != nil {
		return m.ExecuteInDirFunc(dir, name, args...)
	}
	return nil
}

// ExecuteInDirOutput calls the mock function
func (m *MockExecutor) ExecuteInDirOutput(dir, name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Dir: dir, Name: name, Args: args})
	if m.ExecuteInDirOutputFunc != nil {
		return m.ExecuteInDirOutputFunc(dir, name, args...)
	}
	return []byte(""), nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
