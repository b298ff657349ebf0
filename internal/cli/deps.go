package cli

import (
	"bufio"
	"os"

	"github.com/ksyq12/wpsite/internal/compose"
	"github.com/ksyq12/wpsite/internal/config"
	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/executor"
	"github.com/ksyq12/wpsite/internal/hosts"
	"github.com/ksyq12/wpsite/internal/site"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader        ConfigLoader
	OrchestratorFactory OrchestratorFactory
	HostsEditor         HostsEditor
	RootChecker         RootChecker
	StdinReader         StdinReader
	Listeners           site.ListenerFunc
}

// ConfigLoader handles registry loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// OrchestratorFactory finds the installed compose implementation
type OrchestratorFactory interface {
	Detect(preference string) (compose.Orchestrator, error)
}

// HostsEditor manages /etc/hosts entries for sites
type HostsEditor interface {
	Add(name string) error
	Remove(name string) error
	Has(name string) (bool, error)
	Writable() bool
}

// RootChecker checks root privileges
type RootChecker interface {
	RequireRoot() error
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader:        &realConfigLoader{},
	OrchestratorFactory: &realOrchestratorFactory{},
	HostsEditor:         hosts.New(),
	RootChecker:         &realRootChecker{},
	StdinReader:         &realStdinReader{},
	Listeners:           site.HostListeners,
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to existing functions

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realOrchestratorFactory struct{}

func (r *realOrchestratorFactory) Detect(preference string) (compose.Orchestrator, error) {
	orch, err := compose.Detect(executor.NewSystemExecutor(), preference)
	if err != nil {
		return nil, err
	}
	return orch, nil
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return errors.ErrRootRequired
	}
	return nil
}

type realStdinReader struct {
	reader *bufio.Reader
}

func (r *realStdinReader) ReadString(delim byte) (string, error) {
	if r.reader == nil {
		r.reader = bufio.NewReader(os.Stdin)
	}
	return r.reader.ReadString(delim)
}
