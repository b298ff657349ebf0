// Package config persists the wpsite registry: which sites exist, where
// their directories live, and which host ports they own. The registry is
// bookkeeping only; the filesystem and container runtime stay the source
// of truth.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Orchestrator string           `yaml:"orchestrator"` // auto, docker, docker-compose
	SitesDir     string           `yaml:"sites_dir"`
	Sites        map[string]*Site `yaml:"sites"`
}

// configDir is the default config directory
const configDir = ".config/wpsite"
const configFile = "config.yaml"

// defaultSitesDir is the default per-user site data directory
const defaultSitesDir = ".wpsite/sites"

// New creates a new Config with default values
func New() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Orchestrator: "auto",
		SitesDir:     filepath.Join(home, defaultSitesDir),
		Sites:        make(map[string]*Site),
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from disk
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// If config doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Initialize Sites map if nil
	if cfg.Sites == nil {
		cfg.Sites = make(map[string]*Site)
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// AddSite adds a site to the registry
func (c *Config) AddSite(site *Site) error {
	if _, exists := c.Sites[site.Name]; exists {
		return fmt.Errorf("site %s already exists", site.Name)
	}
	c.Sites[site.Name] = site
	return nil
}

// GetSite returns a site by name
func (c *Config) GetSite(name string) (*Site, error) {
	site, exists := c.Sites[name]
	if !exists {
		return nil, fmt.Errorf("site %s not found", name)
	}
	return site, nil
}

// RemoveSite removes a site from the registry
func (c *Config) RemoveSite(name string) error {
	if _, exists := c.Sites[name]; !exists {
		return fmt.Errorf("site %s not found", name)
	}
	delete(c.Sites, name)
	return nil
}

// ListSites returns all registered sites
func (c *Config) ListSites() []*Site {
	sites := make([]*Site, 0, len(c.Sites))
	for _, s := range c.Sites {
		sites = append(sites, s)
	}
	return sites
}

// SiteDir returns the directory a site's generated files live in
func (c *Config) SiteDir(name string) string {
	return filepath.Join(c.SitesDir, name)
}
