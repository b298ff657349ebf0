package cli

import (
	"time"

	"github.com/ksyq12/wpsite/internal/config"
	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/output"
	"github.com/ksyq12/wpsite/internal/site"
	"github.com/spf13/cobra"
)

var (
	noStart bool
	noHosts bool
)

var createCmd = &cobra.Command{
	Use:   "create <site_name>",
	Short: "Create a new WordPress site",
	Long: `Create a new WordPress site deployment.

Renders the site's docker-compose topology and Nginx configuration into
an isolated directory, assigns a free host port block, adds a /etc/hosts
entry (when running as root), and starts the containers.

Examples:
  wpsite create myblog
  wpsite create myblog --no-start
  wpsite create myblog --no-hosts`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().BoolVar(&noStart, "no-start", false, "Materialize files without starting containers")
	createCmd.Flags().BoolVar(&noHosts, "no-hosts", false, "Don't add a /etc/hosts entry")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
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

	// Check if site already exists
	if _, err := cfg.GetSite(name); err == nil {
		return errors.AlreadyExists(name)
	}

	// Assign a port block disjoint from every other site and from
	// listeners already open on the host
	ports, err := site.AllocatePorts(cfg, deps.Listeners)
	if err != nil {
		return err
	}

	s := &config.Site{
		Name:      name,
		Dir:       cfg.SiteDir(name),
		Ports:     ports,
		Enabled:   !noStart,
		CreatedAt: time.Now(),
	}

	// Render compose file, nginx config, and placeholder index.php
	output.Info("Materializing site files...")
	if err := site.Materialize(s); err != nil {
		return err
	}

	// Add hosts entry so the site name resolves locally
	if !noHosts {
		if err := requireRoot(); err != nil {
			output.Warn("Skipping /etc/hosts entry: %v", err)
		} else if err := deps.HostsEditor.Add(name); err != nil {
			output.Warn("Failed to add /etc/hosts entry: %v", err)
		} else {
			s.HostsEntry = true
		}
	}

	// Register the site before starting so a failed start can still be
	// cleaned up with delete
	if err := cfg.AddSite(s); err != nil {
		return errors.AlreadyExists(name)
	}
	if err := saveConfig(cfg); err != nil {
		output.Warn("Site materialized but config save failed: %v", err)
	}

	if !noStart {
		output.Info("Starting containers via %s...", orch.Name())
		if err := orch.Up(s); err != nil {
			return err
		}
	}

	return outputResult(
		map[string]interface{}{
			"success": true,
			"site":    name,
			"dir":     s.Dir,
			"ports":   s.Ports,
			"started": !noStart,
		},
		"Site %s created (wordpress :%d, phpmyadmin :%d, proxy :%d)",
		name, s.Ports.WordPress, s.Ports.PHPMyAdmin, s.Ports.Proxy,
	)
}
