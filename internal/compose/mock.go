package compose

import "github.com/ksyq12/wpsite/internal/config"

// MockOrchestrator is a test double for the Orchestrator interface
type MockOrchestrator struct {
	name string

	// Function mocks - set these to customize behavior
	UpFunc      func(site *config.Site) error
	StartFunc   func(site *config.Site) error
	StopFunc    func(site *config.Site) error
	DownFunc    func(site *config.Site, removeVolumes bool) error
	PSFunc      func(site *config.Site) ([]byte, error)
	LogsFunc    func(site *config.Site, follow bool, tail int) error
	VersionFunc func() (string, error)

	// Call tracking - check these to verify interactions
	UpCalls      []string
	StartCalls   []string
	StopCalls    []string
	DownCalls    []DownCall
	PSCalls      []string
	LogsCalls    []string
	VersionCalls int
}

// DownCall records arguments passed to Down
type DownCall struct {
	Site          string
	RemoveVolumes bool
}

// NewMockOrchestrator creates a MockOrchestrator with no-op defaults
func NewMockOrchestrator(name string) *MockOrchestrator {
	return &MockOrchestrator{
		name:       name,
		UpCalls:    make([]string, 0),
		StartCalls: make([]string, 0),
		StopCalls:  make([]string, 0),
		DownCalls:  make([]DownCall, 0),
	}
}

// Name returns the configured orchestrator name
func (m *MockOrchestrator) Name() string {
	return m.name
}

// Up records the call and invokes the mock function if set
func (m *MockOrchestrator) Up(site *config.Site) error {
	m.UpCalls = append(m.UpCalls, site.Name)
	if m.UpFunc != nil {
		return m.UpFunc(site)
	}
	return nil
}

// Start records the call and invokes the mock function if set
func (m *MockOrchestrator) Start(site *config.Site) error {
	m.StartCalls = append(m.StartCalls, site.Name)
	if m.StartFunc != nil {
		return m.StartFunc(site)
	}
	return nil
}

// Stop records the call and invokes the mock function if set
func (m *MockOrchestrator) Stop(site *config.Site) error {
	m.StopCalls = append(m.StopCalls, site.Name)
	if m.StopFunc != nil {
		return m.StopFunc(site)
	}
	return nil
}

// Down records the call and invokes the mock function if set
func (m *MockOrchestrator) Down(site *config.Site, removeVolumes bool) error {
	m.DownCalls = append(m.DownCalls, DownCall{Site: site.Name, RemoveVolumes: removeVolumes})
	if m.DownFunc != nil {
		return m.DownFunc(site, removeVolumes)
	}
	return nil
}

// PS records the call and invokes the mock function if set
func (m *MockOrchestrator) PS(site *config.Site) ([]byte, error) {
	m.PSCalls = append(m.PSCalls, site.Name)
	if m.PSFunc != nil {
		return m.PSFunc(site)
	}
	return []byte(""), nil
}

// Logs records the call and invokes the mock function if set
func (m *MockOrchestrator) Logs(site *config.Site, follow bool, tail int) error {
	m.LogsCalls = append(m.LogsCalls, site.Name)
	if m.LogsFunc != nil {
		return m.LogsFunc(site, follow, tail)
	}
	return nil
}

// Version records the call and invokes the mock function if set
func (m *MockOrchestrator) Version() (string, error) {
	m.VersionCalls++
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "mock", nil
}

// Reset clears all call tracking
func (m *MockOrchestrator) Reset() {
	m.UpCalls = make([]string, 0)
	m.StartCalls = make([]string, 0)
	m.StopCalls = make([]string, 0)
	m.DownCalls = make([]DownCall, 0)
	m.PSCalls = make([]string, 0)
	m.LogsCalls = make([]string, 0)
	m.VersionCalls = 0
}
