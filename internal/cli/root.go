package cli

import (
	"fmt"
	"os"

	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/logger"
	"github.com/spf13/cobra"
)

var (
	jsonOutput bool
	verbose    bool
	version    = "dev"
)

// rootCmd represents the base command. Besides the verb subcommands, the
// root itself accepts the positional form `wpsite <site_name> [action]`,
// where a missing action means create.
var rootCmd = &cobra.Command{
	Use:   "wpsite <site_name> [enable|disable|delete]",
	Short: "WordPress site deployment CLI",
	Long: `wpsite creates and manages local WordPress site deployments.

Each site gets its own directory with a docker-compose topology (MySQL,
PHP-FPM, phpMyAdmin, WordPress, Nginx reverse proxy) and its own host
port block, so several sites can run side by side.

The short form maps directly to the lifecycle actions:

  wpsite myblog            # create and start the site
  wpsite myblog disable    # stop its containers
  wpsite myblog enable     # start them again
  wpsite myblog delete     # stop and remove containers, volumes, files`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRoot,
}

// runRoot dispatches the positional form to the same runners the verb
// subcommands use.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	name := args[0]
	action := "create"
	if len(args) == 2 {
		action = args[1]
	}

	switch action {
	case "create":
		return runCreate(cmd, []string{name})
	case "enable":
		return runEnable(cmd, []string{name})
	case "disable":
		return runDisable(cmd, []string{name})
	case "delete":
		return runDelete(cmd, []string{name})
	default:
		return errors.Validation(fmt.Sprintf("unknown action %q: must be enable, disable, or delete", action))
	}
}

// Execute runs the root command. Orchestrator failures exit with the
// orchestrator's own exit code; everything else exits 1.
func Execute() {
	// Initialize logger based on verbose flag (parsed by cobra)
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status, passing orchestrator
// exit codes through unmodified.
func exitCode(err error) int {
	var siteErr *errors.SiteError
	if errors.As(err, &siteErr) && siteErr.Code == errors.ErrCodeOrchestrator && siteErr.ExitCode > 0 {
		return siteErr.ExitCode
	}
	return 1
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}
