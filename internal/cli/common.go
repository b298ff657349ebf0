package cli

import (
	"fmt"

	"github.com/ksyq12/wpsite/internal/compose"
	"github.com/ksyq12/wpsite/internal/config"
	"github.com/ksyq12/wpsite/internal/output"
	"github.com/ksyq12/wpsite/internal/site"
)

// loadConfigAndOrchestrator loads the registry and detects the installed
// compose implementation
func loadConfigAndOrchestrator() (*config.Config, compose.Orchestrator, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	orch, err := deps.OrchestratorFactory.Detect(cfg.Orchestrator)
	if err != nil {
		return nil, nil, err
	}

	return cfg, orch, nil
}

// saveConfig saves the registry and returns error instead of just warning
func saveConfig(cfg *config.Config) error {
	if err := deps.ConfigLoader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// requireRoot checks for root privileges via the injected checker
func requireRoot() error {
	return deps.RootChecker.RequireRoot()
}

// validateSiteName checks if the site name is safe as a filesystem, DNS,
// and container-name token
func validateSiteName(name string) error {
	return site.ValidateName(name)
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}
