package cli

import (
	"errors"
	"strings"

	"github.com/ksyq12/wpsite/internal/compose"
	"github.com/ksyq12/wpsite/internal/config"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockOrchestratorFactory is a test double for OrchestratorFactory
type MockOrchestratorFactory struct {
	Orchestrator compose.Orchestrator
	Err          error
}

func (m *MockOrchestratorFactory) Detect(preference string) (compose.Orchestrator, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Orchestrator != nil {
		return m.Orchestrator, nil
	}
	return compose.NewMockOrchestrator("docker compose"), nil
}

// MockHostsEditor is a test double for HostsEditor
type MockHostsEditor struct {
	Entries     map[string]bool
	AddErr      error
	RemoveErr   error
	NotWritable bool
	AddCalls    []string
	RemoveCalls []string
}

func NewMockHostsEditor() *MockHostsEditor {
	return &MockHostsEditor{Entries: make(map[string]bool)}
}

func (m *MockHostsEditor) Add(name string) error {
	m.AddCalls = append(m.AddCalls, name)
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Entries[name] = true
	return nil
}

func (m *MockHostsEditor) Remove(name string) error {
	m.RemoveCalls = append(m.RemoveCalls, name)
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	delete(m.Entries, name)
	return nil
}

func (m *MockHostsEditor) Has(name string) (bool, error) {
	return m.Entries[name], nil
}

func (m *MockHostsEditor) Writable() bool {
	return !m.NotWritable
}

// MockRootChecker is a test double for RootChecker
type MockRootChecker struct {
	IsRoot bool
	Calls  int
}

func (m *MockRootChecker) RequireRoot() error {
	m.Calls++
	if !m.IsRoot {
		return errors.New("this operation requires root privileges. Please run with sudo")
	}
	return nil
}

// MockStdinReader is a test double for StdinReader
type MockStdinReader struct {
	Input string
	pos   int
}

func (m *MockStdinReader) ReadString(delim byte) (string, error) {
	if m.pos >= len(m.Input) {
		return "", errors.New("EOF")
	}
	idx := strings.IndexByte(m.Input[m.pos:], delim)
	if idx == -1 {
		result := m.Input[m.pos:]
		m.pos = len(m.Input)
		return result, nil
	}
	result := m.Input[m.pos : m.pos+idx+1]
	m.pos += idx + 1
	return result, nil
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			ConfigLoader:        &MockConfigLoader{Cfg: config.New()},
			OrchestratorFactory: &MockOrchestratorFactory{},
			HostsEditor:         NewMockHostsEditor(),
			RootChecker:         &MockRootChecker{IsRoot: true},
			StdinReader:         &MockStdinReader{Input: "y\n"},
			Listeners:           func() (map[int]bool, error) { return map[int]bool{}, nil },
		},
	}
}

// WithConfig sets the config for the mock
func (b *MockDependenciesBuilder) WithConfig(cfg *config.Config) *MockDependenciesBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithConfigLoader sets a custom config loader
func (b *MockDependenciesBuilder) WithConfigLoader(loader ConfigLoader) *MockDependenciesBuilder {
	b.deps.ConfigLoader = loader
	return b
}

// WithOrchestrator sets the orchestrator for the mock
func (b *MockDependenciesBuilder) WithOrchestrator(orch compose.Orchestrator) *MockDependenciesBuilder {
	b.deps.OrchestratorFactory = &MockOrchestratorFactory{Orchestrator: orch}
	return b
}

// WithOrchestratorError sets an error for orchestrator detection
func (b *MockDependenciesBuilder) WithOrchestratorError(err error) *MockDependenciesBuilder {
	b.deps.OrchestratorFactory = &MockOrchestratorFactory{Err: err}
	return b
}

// WithHostsEditor sets a custom hosts editor
func (b *MockDependenciesBuilder) WithHostsEditor(h HostsEditor) *MockDependenciesBuilder {
	b.deps.HostsEditor = h
	return b
}

// WithRootAccess sets whether root access is available
func (b *MockDependenciesBuilder) WithRootAccess(isRoot bool) *MockDependenciesBuilder {
	b.deps.RootChecker = &MockRootChecker{IsRoot: isRoot}
	return b
}

// WithStdinInput sets the stdin input for the mock
func (b *MockDependenciesBuilder) WithStdinInput(input string) *MockDependenciesBuilder {
	b.deps.StdinReader = &MockStdinReader{Input: input}
	return b
}

// WithListeners sets the host listener scan result
func (b *MockDependenciesBuilder) WithListeners(ports map[int]bool) *MockDependenciesBuilder {
	b.deps.Listeners = func() (map[int]bool, error) { return ports, nil }
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}
