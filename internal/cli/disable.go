package cli

import (
	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/output"
	"github.com/spf13/cobra"
)

var disableCmd = &cobra.Command{
	Use:   "disable <site_name>",
	Short: "Stop a site's containers",
	Long: `Disable a site by stopping its containers. Generated files and the
database volume stay in place; enable brings the site back as it was.

Examples:
  wpsite disable myblog`,
	Args: cobra.ExactArgs(1),
	RunE: runDisable,
}

func init() {
	rootCmd.AddCommand(disableCmd)
}

func runDisable(cmd *cobra.Command, args []string) error {
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

	// Stop via orchestrator
	output.Info("Stopping containers via %s...", orch.Name())
	if err := orch.Stop(s); err != nil {
		return err
	}

	// Update registry
	s.Enabled = false
	if err := saveConfig(cfg); err != nil {
		output.Warn("Site disabled but config save failed: %v", err)
	}

	return outputResult(
		map[string]interface{}{
			"success":  true,
			"site":     name,
			"disabled": true,
		},
		"Site %s disabled", name,
	)
}
