package config

import "time"

// Ports is the host port block assigned to one site. Each site gets a
// disjoint block so all sites can run simultaneously.
type Ports struct {
	WordPress  int `yaml:"wordpress" json:"wordpress"`
	Proxy      int `yaml:"proxy" json:"proxy"`
	PHPMyAdmin int `yaml:"phpmyadmin" json:"phpmyadmin"`
	PHPFPM     int `yaml:"phpfpm" json:"phpfpm"`
	DB         int `yaml:"db" json:"db"`
}

// Site represents one WordPress deployment, identified by name. The name is
// the namespace key: directory, network, volume, and container names are all
// derived from it.
type Site struct {
	Name       string    `yaml:"name"`
	Dir        string    `yaml:"dir"`
	Ports      Ports     `yaml:"ports"`
	Enabled    bool      `yaml:"enabled"`
	HostsEntry bool      `yaml:"hosts_entry"`
	CreatedAt  time.Time `yaml:"created_at"`
}

// Project returns the compose project name for the site. Compose prefixes
// container, network, and volume names with it, which is what keeps two
// sites from colliding in the container runtime.
func (s *Site) Project() string {
	return "wpsite-" + s.Name
}

// Network returns the per-site compose network name.
func (s *Site) Network() string {
	return s.Name + "-net"
}

// Volume returns the named volume holding the site's database storage.
func (s *Site) Volume() string {
	return s.Name + "-db-data"
}
