package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ksyq12/wpsite/internal/config"
	"github.com/ksyq12/wpsite/internal/executor"
	"github.com/ksyq12/wpsite/internal/output"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system status and diagnose issues",
	Long: `Run diagnostic checks on the system and site registry.

Checks:
  - Docker installation
  - Compose implementation (docker compose plugin or docker-compose)
  - Sites directory writability
  - /etc/hosts writability
  - Per-site files and registry consistency

Examples:
  wpsite doctor
  wpsite doctor --json`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// SiteStatus represents the status of a single site
type SiteStatus struct {
	Name    string        `json:"name"`
	Enabled bool          `json:"enabled"`
	Checks  []CheckResult `json:"checks"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	SystemRequirements []CheckResult `json:"system_requirements"`
	Configuration      []CheckResult `json:"configuration"`
	Sites              []SiteStatus  `json:"sites"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	exec := executor.NewSystemExecutor()

	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	report := &DoctorReport{}
	report.SystemRequirements = checkSystemRequirements(exec, cfg)
	report.Configuration = checkConfiguration(cfg)
	report.Sites = checkSites(cfg)

	if jsonOutput {
		return output.JSON(report)
	}

	displayDoctorResults(report)
	return nil
}

func checkSystemRequirements(exec executor.CommandExecutor, cfg *config.Config) []CheckResult {
	results := []CheckResult{}

	// Docker itself
	if _, err := exec.LookPath("docker"); err == nil {
		version := "unknown"
		if out, err := exec.Execute("docker", "--version"); err == nil {
			version = strings.TrimSpace(string(out))
		}
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Docker installed (%s)", version),
		})
	} else {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "Docker not installed",
		})
	}

	// A compose implementation
	if orch, err := deps.OrchestratorFactory.Detect(cfg.Orchestrator); err == nil {
		version := "unknown"
		if v, err := orch.Version(); err == nil {
			version = v
		}
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Compose available via %q (%s)", orch.Name(), version),
		})
	} else {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "No compose implementation found (docker compose plugin or docker-compose)",
		})
	}

	// /etc/hosts writability determines whether site names resolve locally
	if deps.HostsEditor.Writable() {
		results = append(results, CheckResult{
			Status:  "success",
			Message: "/etc/hosts writable",
		})
	} else {
		results = append(results, CheckResult{
			Status:  "warning",
			Message: "/etc/hosts not writable (run as root to manage hosts entries)",
		})
	}

	return results
}

func checkConfiguration(cfg *config.Config) []CheckResult {
	results := []CheckResult{}

	// Config file
	configPath, pathErr := config.ConfigPath()
	if pathErr == nil {
		if _, err := os.Stat(configPath); err == nil {
			displayPath := strings.Replace(configPath, os.Getenv("HOME"), "~", 1)
			results = append(results, CheckResult{
				Status:  "success",
				Message: fmt.Sprintf("Config file exists (%s)", displayPath),
			})
		} else {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: "Config file not found (created on first site)",
			})
		}
	} else {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "Could not determine config path",
		})
	}

	// Sites directory writability
	if err := os.MkdirAll(cfg.SitesDir, 0755); err != nil {
		results = append(results, CheckResult{
			Status:  "error",
			Message: fmt.Sprintf("Sites directory not writable: %s", cfg.SitesDir),
		})
	} else {
		results = append(results, CheckResult{
			Status:  "success",
			Message: fmt.Sprintf("Sites directory writable (%s)", cfg.SitesDir),
		})
	}

	return results
}

func checkSites(cfg *config.Config) []SiteStatus {
	statuses := []SiteStatus{}

	for name, s := range cfg.Sites {
		status := SiteStatus{
			Name:    name,
			Enabled: s.Enabled,
			Checks:  []CheckResult{},
		}

		allOK := true

		if _, err := os.Stat(s.Dir); os.IsNotExist(err) {
			status.Checks = append(status.Checks, CheckResult{
				Status:  "error",
				Message: "site directory missing",
			})
			allOK = false
		} else if _, err := os.Stat(filepath.Join(s.Dir, "docker-compose.yml")); os.IsNotExist(err) {
			status.Checks = append(status.Checks, CheckResult{
				Status:  "error",
				Message: "compose file missing",
			})
			allOK = false
		}

		if s.HostsEntry {
			if has, err := deps.HostsEditor.Has(name); err == nil && !has {
				status.Checks = append(status.Checks, CheckResult{
					Status:  "warning",
					Message: "hosts entry missing",
				})
				allOK = false
			}
		}

		if allOK {
			statusText := "disabled"
			if s.Enabled {
				statusText = "enabled"
			}
			status.Checks = append(status.Checks, CheckResult{
				Status:  "success",
				Message: fmt.Sprintf("%s, files present", statusText),
			})
		}

		statuses = append(statuses, status)
	}

	return statuses
}

func displayDoctorResults(report *DoctorReport) {
	output.Print("Checking system requirements...")
	for _, check := range report.SystemRequirements {
		displayCheck(check)
	}
	output.Print("")

	output.Print("Checking configuration...")
	for _, check := range report.Configuration {
		displayCheck(check)
	}
	output.Print("")

	if len(report.Sites) > 0 {
		output.Print("Checking sites...")
		for _, s := range report.Sites {
			if len(s.Checks) > 0 {
				mainCheck := s.Checks[len(s.Checks)-1]
				switch mainCheck.Status {
				case "success":
					output.Success("%s - %s", s.Name, mainCheck.Message)
				case "warning":
					output.Warn("%s - %s", s.Name, mainCheck.Message)
				case "error":
					output.Error("%s - %s", s.Name, mainCheck.Message)
				}
			}
		}
	} else {
		output.Print("No sites configured")
	}
}

func displayCheck(check CheckResult) {
	switch check.Status {
	case "success":
		output.Success("%s", check.Message)
	case "warning":
		output.Warn("%s", check.Message)
	case "error":
		output.Error("%s", check.Message)
	}
}
