package compose

import (
	"fmt"
	"strings"

	"github.com/ksyq12/wpsite/internal/config"
	"github.com/ksyq12/wpsite/internal/errors"
	"github.com/ksyq12/wpsite/internal/executor"
	"github.com/ksyq12/wpsite/internal/logger"
)

// Orchestrator drives the external container-composition tool for one
// site at a time. Each method maps to exactly one orchestrator invocation,
// run synchronously in the site's directory.
type Orchestrator interface {
	// Name returns the orchestrator invocation, e.g. "docker compose"
	Name() string

	// Up creates and starts the site's service set
	Up(site *config.Site) error

	// Start starts previously created containers
	Start(site *config.Site) error

	// Stop stops the site's containers without removing them
	Stop(site *config.Site) error

	// Down stops and removes containers and networks; removeVolumes also
	// deletes the named database volume
	Down(site *config.Site, removeVolumes bool) error

	// PS returns the orchestrator's view of the site's services
	PS(site *config.Site) ([]byte, error)

	// Logs streams service logs to the terminal
	Logs(site *config.Site, follow bool, tail int) error

	// Version returns the orchestrator version string
	Version() (string, error)
}

// CLI is the Orchestrator implementation shelling out to docker compose.
type CLI struct {
	bin  string   // binary to invoke
	base []string // leading args, e.g. ["compose"] for the docker plugin
	exec executor.CommandExecutor
}

// Detect finds an installed compose implementation. Preference is the
// configured orchestrator: "docker" forces the compose plugin,
// "docker-compose" forces the standalone binary, "auto" tries the plugin
// first and falls back to the standalone tool.
func Detect(exec executor.CommandExecutor, preference string) (*CLI, error) {
	plugin := func() (*CLI, bool) {
		if _, err := exec.LookPath("docker"); err != nil {
			return nil, false
		}
		if _, err := exec.Execute("docker", "compose", "version"); err != nil {
			return nil, false
		}
		return &CLI{bin: "docker", base: []string{"compose"}, exec: exec}, true
	}
	standalone := func() (*CLI, bool) {
		if _, err := exec.LookPath("docker-compose"); err != nil {
			return nil, false
		}
		return &CLI{bin: "docker-compose", exec: exec}, true
	}

	switch preference {
	case "docker":
		if c, ok := plugin(); ok {
			return c, nil
		}
	case "docker-compose":
		if c, ok := standalone(); ok {
			return c, nil
		}
	default: // auto
		if c, ok := plugin(); ok {
			return c, nil
		}
		if c, ok := standalone(); ok {
			return c, nil
		}
	}
	return nil, errors.ErrComposeNotFound
}

// NewCLI creates an orchestrator with an explicit binary, for tests.
func NewCLI(bin string, base []string, exec executor.CommandExecutor) *CLI {
	return &CLI{bin: bin, base: base, exec: exec}
}

// Name returns the orchestrator invocation string.
func (c *CLI) Name() string {
	if len(c.base) == 0 {
		return c.bin
	}
	return c.bin + " " + strings.Join(c.base, " ")
}

// run invokes one orchestrator subcommand in the site directory. Output
// streams to the terminal; a non-zero exit becomes an ORCHESTRATOR error
// carrying the subprocess exit code for passthrough.
func (c *CLI) run(site *config.Site, args ...string) error {
	full := append(append([]string{}, c.base...), "-p", site.Project())
	full = append(full, args...)

	logger.DebugFields("Running orchestrator", map[string]interface{}{
		"bin":  c.bin,
		"args": strings.Join(full, " "),
		"dir":  site.Dir,
	})

	if err := c.exec.ExecuteInDir(site.Dir, c.bin, full...); err != nil {
		return errors.Orchestrator(site.Name, executor.ExitCode(err), err)
	}
	return nil
}

// Up creates and starts the service set in detached mode.
func (c *CLI) Up(site *config.Site) error {
	return c.run(site, "up", "-d")
}

// Start starts stopped containers without recreating them.
func (c *CLI) Start(site *config.Site) error {
	return c.run(site, "start")
}

// Stop stops running containers; files and volumes are untouched.
func (c *CLI) Stop(site *config.Site) error {
	return c.run(site, "stop")
}

// Down stops and removes containers and the per-site network.
func (c *CLI) Down(site *config.Site, removeVolumes bool) error {
	args := []string{"down"}
	if removeVolumes {
		args = append(args, "--volumes")
	}
	return c.run(site, args...)
}

// PS returns the orchestrator's service listing for the site. Like the
// lifecycle commands it runs in the site directory: standalone
// docker-compose reads the compose file from the current directory.
func (c *CLI) PS(site *config.Site) ([]byte, error) {
	args := append(append([]string{}, c.base...), "-p", site.Project(), "ps")
	out, err := c.exec.ExecuteInDirOutput(site.Dir, c.bin, args...)
	if err != nil {
		return out, errors.Orchestrator(site.Name, executor.ExitCode(err), err)
	}
	return out, nil
}

// Logs streams service logs to the terminal.
func (c *CLI) Logs(site *config.Site, follow bool, tail int) error {
	args := []string{"logs", "--tail", fmt.Sprintf("%d", tail)}
	if follow {
		args = append(args, "--follow")
	}
	return c.run(site, args...)
}

// Version returns the orchestrator version output.
func (c *CLI) Version() (string, error) {
	args := append(append([]string{}, c.base...), "version")
	out, err := c.exec.Execute(c.bin, args...)
	if err != nil {
		return "", fmt.Errorf("failed to get orchestrator version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}
