// Package compose generates docker-compose documents and drives the
// external compose orchestrator through the executor boundary.
package compose

import "gopkg.in/yaml.v3"

// File is a typed docker-compose document. Marshaling it with yaml.v3
// produces the per-site compose file, so service definitions are built
// structurally instead of by string pasting.
type File struct {
	Services map[string]Service `yaml:"services"`
	Networks map[string]*Named  `yaml:"networks,omitempty"`
	Volumes  map[string]*Named  `yaml:"volumes,omitempty"`
}

// Service is one compose service definition.
type Service struct {
	Image         string            `yaml:"image,omitempty"`
	ContainerName string            `yaml:"container_name,omitempty"`
	Restart       string            `yaml:"restart,omitempty"`
	DependsOn     []string          `yaml:"depends_on,omitempty"`
	Ports         []string          `yaml:"ports,omitempty"`
	Volumes       []string          `yaml:"volumes,omitempty"`
	Environment   map[string]string `yaml:"environment,omitempty"`
	Networks      []string          `yaml:"networks,omitempty"`
}

// Named is a top-level network or volume entry. A nil value marshals to
// null, which compose reads as "create with defaults".
type Named struct {
	Name string `yaml:"name,omitempty"`
}

// Marshal renders the compose document as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}
