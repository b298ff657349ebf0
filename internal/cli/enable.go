package cli

import (
	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/logger"
	"github.com/ksyq12/wpsite/internal/output"
	"github.com/spf13/cobra"
)

var enableCmd = &cobra.Command{
	Use:   "enable <site_name>",
	Short: "Start a site's containers",
	Long: `Enable a site by starting its containers. Generated files are not
touched, so disable followed by enable restores the same service set.

Examples:
  wpsite enable myblog`,
	Args: cobra.ExactArgs(1),
	RunE: runEnable,
}

func init() {
	rootCmd.AddCommand(enableCmd)
}

func runEnable(cmd *cobra.Command, args []string) error {
	name := args[0]

	// Validate site name
	if err := validateSiteName(name); err != nil {
		return err
	}

	// Load registry and orchestrator
	cfg, orch, err := loadConfigAndOrchestrator()
	if err != nil {
		return err
	}

	s, err := cfg.GetSite(name)
	if err != nil {
		return errors.NotFound(name)
	}

	// Start existing containers; a site created with --no-start has none
	// yet, so fall back to bringing the service set up
	output.Info("Starting containers via %s...", orch.Name())
	if err := orch.Start(s); err != nil {
		logger.Debug("start failed, falling back to up: %v", err)
		if err := orch.Up(s); err != nil {
			return err
		}
	}

	// Update registry
	s.Enabled = true
	if err := saveConfig(cfg); err != nil {
		output.Warn("Site enabled but config save failed: %v", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    name,
			"enabled": true,
		},
		"Site %s enabled", name,
	)
}
