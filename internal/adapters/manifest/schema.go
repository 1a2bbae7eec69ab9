package manifest

import "gopkg.in/yaml.v3"

// environmentFile represents the structure of an environment.yml file.
// Dependencies are kept as raw nodes because entries are either constraint
// strings or single-key mappings.
type environmentFile struct {
	Name         string      `yaml:"name"`
	Channels     []string    `yaml:"channels"`
	Platforms    []yaml.Node `yaml:"platforms"`
	Dependencies []yaml.Node `yaml:"dependencies"`
}
