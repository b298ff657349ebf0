package cli

import (
	"strings"

	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/output"
	"github.com/ksyq12/wpsite/internal/site"
	"github.com/spf13/cobra"
)

var (
	forceDelete bool
	keepFiles   bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete <site_name>",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a site",
	Long: `Delete a site: stop and remove its containers, network, and database
volume, then remove its generated files and /etc/hosts entry.

Examples:
  wpsite delete myblog
  wpsite rm myblog --force
  wpsite delete myblog --keep-files`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&forceDelete, "force", "f", false, "Force deletion without confirmation")
	deleteCmd.Flags().BoolVar(&keepFiles, "keep-files", false, "Keep the site directory on disk")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	// Confirm deletion if not forced
	if !forceDelete {
		output.Print("Delete site '%s' including its database volume? [y/N]: ", name)
		answer, _ := deps.StdinReader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			output.Info("Deletion cancelled")
			return nil
		}
	}

	// Stop and remove containers, network, and the database volume
	output.Info("Removing containers via %s...", orch.Name())
	if err := orch.Down(s, true); err != nil {
		return err
	}

	// Remove the hosts entry this tool added at create
	if s.HostsEntry {
		if err := requireRoot(); err != nil {
			output.Warn("Skipping /etc/hosts cleanup: %v", err)
		} else if err := deps.HostsEditor.Remove(name); err != nil {
			output.Warn("Failed to remove /etc/hosts entry: %v", err)
		}
	}

	// Remove generated files
	if !keepFiles {
		output.Info("Removing site files...")
		if err := site.Remove(s); err != nil {
			return err
		}
	}

	// Drop from registry
	if err := cfg.RemoveSite(name); err != nil {
		output.Warn("Failed to drop site from registry: %v", err)
	}
	if err := saveConfig(cfg); err != nil {
		output.Warn("Site deleted but config save failed: %v", err)
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    name,
			"deleted": true,
		},
		"Site %s deleted", name,
	)
}
