package cli

import (
	"fmt"
	"sort"

	"github.com/ksyq12/wpsite/internal/config"
	"github.com/ksyq12/wpsite/internal/output"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all sites",
	Long: `List all registered WordPress sites.

Examples:
  wpsite list
  wpsite ls
  wpsite list --json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type siteListItem struct {
	Name    string       `json:"name"`
	Dir     string       `json:"dir"`
	Ports   config.Ports `json:"ports"`
	Enabled bool         `json:"enabled"`
	Created string       `json:"created"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sites := cfg.ListSites()
	items := make([]siteListItem, 0, len(sites))
	for _, s := range sites {
		items = append(items, siteListItem{
			Name:    s.Name,
			Dir:     s.Dir,
			Ports:   s.Ports,
			Enabled: s.Enabled,
			Created: s.CreatedAt.Format("2006-01-02"),
		})
	}

	// Sort by name
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	if len(items) == 0 {
		if jsonOutput {
			return output.JSON([]siteListItem{})
		}
		output.Info("No sites configured")
		return nil
	}

	if jsonOutput {
		return output.JSON(items)
	}

	headers := []string{"NAME", "WORDPRESS", "PHPMYADMIN", "PROXY", "ENABLED", "CREATED"}
	rows := make([][]string, 0, len(items))

	for _, item := range items {
		enabled := "no"
		if item.Enabled {
			enabled = "yes"
		}
		rows = append(rows, []string{
			item.Name,
			fmt.Sprintf(":%d", item.Ports.WordPress),
			fmt.Sprintf(":%d", item.Ports.PHPMyAdmin),
			fmt.Sprintf(":%d", item.Ports.Proxy),
			enabled,
			item.Created,
		})
	}

	output.Table(headers, rows)
	return nil
}
