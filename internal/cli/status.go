package cli

import (
	"strings"

	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/health"
	"github.com/ksyq12/wpsite/internal/output"
	"github.com/ksyq12/wpsite/internal/site"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <site_name>",
	Short: "Show a site's service and database status",
	Long: `Show the orchestrator's view of a site's services and verify the
database accepts connections on its published port.

Examples:
  wpsite status myblog
  wpsite status myblog --json`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// dbCheck is the database probe, replaceable in tests.
var dbCheck = health.CheckDB

func runStatus(cmd *cobra.Command, args []string) error {
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

	ps, err := orch.PS(s)
	if err != nil {
		return err
	}

	dbErr := dbCheck(s.Ports.DB, site.DBUser, site.DBPassword, site.DBName)

	if jsonOutput {
		result := map[string]interface{}{
			"site":     name,
			"enabled":  s.Enabled,
			"services": strings.TrimSpace(string(ps)),
			"db_ok":    dbErr == nil,
		}
		if dbErr != nil {
			result["db_error"] = dbErr.Error()
		}
		return output.JSON(result)
	}

	output.Print("%s", strings.TrimSpace(string(ps)))
	if dbErr != nil {
		output.Warn("Database: %v", dbErr)
	} else {
		output.Success("Database accepting connections on :%d", s.Ports.DB)
	}
	return nil
}
