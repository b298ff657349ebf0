package cli

import (
	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/spf13/cobra"
)

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs <site_name>",
	Short: "View a site's service logs",
	Long: `Stream logs from a site's containers through the orchestrator.

Examples:
  wpsite logs myblog         # Show recent log lines
  wpsite logs myblog -f      # Follow logs in real-time
  wpsite logs myblog -n 50   # Show last 50 lines per service`,
	Args: cobra.ExactArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output (like tail -f)")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 20, "Number of lines to show per service")

	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
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

	return orch.Logs(s, logsFollow, logsLines)
}
