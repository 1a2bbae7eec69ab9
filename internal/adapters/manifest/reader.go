// Package manifest reads environment manifests (environment.yml).
package manifest

import (
	"os"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Reader implements ports.ManifestReader for YAML environment files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the environment file at path.
func (r *Reader) Read(path string) (*domain.Manifest, error) {
	//nolint:gosec // path is supplied by the pipeline author
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return m, nil
}

// Parse decodes an environment file.
func Parse(data []byte) (*domain.Manifest, error) {
	var env environmentFile
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	platforms, err := convertPlatforms(env.Platforms)
	if err != nil {
		return nil, err
	}

	deps := make([]domain.DependencySpec, 0, len(env.Dependencies))
	for i := range env.Dependencies {
		dep, err := convertDependency(&env.Dependencies[i])
		if err != nil {
			return nil, zerr.With(err, "dependency_index", i)
		}
		deps = append(deps, dep)
	}

	return &domain.Manifest{
		Name:         env.Name,
		Channels:     env.Channels,
		Platforms:    platforms,
		Dependencies: deps,
	}, nil
}

func convertPlatforms(nodes []yaml.Node) ([]string, error) {
	if len(nodes) == 0 {
		return nil, zerr.With(domain.ErrManifestParseFailed, "reason", "platforms must be a non-empty list")
	}

	seen := make(map[string]struct{}, len(nodes))
	platforms := make([]string, 0, len(nodes))
	for i := range nodes {
		n := &nodes[i]
		if n.Kind != yaml.ScalarNode || n.Value == "" {
			err := zerr.With(domain.ErrManifestParseFailed, "reason", "platform must be a non-empty string")
			return nil, zerr.With(err, "line", n.Line)
		}
		if _, dup := seen[n.Value]; dup {
			continue
		}
		seen[n.Value] = struct{}{}
		platforms = append(platforms, n.Value)
	}
	return platforms, nil
}

func convertDependency(n *yaml.Node) (domain.DependencySpec, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		spec, err := domain.NewSimpleSpec(n.Value)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "line", n.Line)
		}
		return spec, nil

	case yaml.MappingNode:
		return convertChanneled(n)

	default:
		err := zerr.With(domain.ErrManifestParseFailed, "reason", "dependency must be a string or a single-key mapping")
		return nil, zerr.With(err, "line", n.Line)
	}
}

func convertChanneled(n *yaml.Node) (domain.DependencySpec, error) {
	// Mapping content alternates key and value nodes.
	if len(n.Content) != 2 {
		err := zerr.With(domain.ErrManifestParseFailed, "reason", "dependency mapping must have exactly one key")
		return nil, zerr.With(err, "line", n.Line)
	}

	key, value := n.Content[0], n.Content[1]
	if key.Kind != yaml.ScalarNode {
		err := zerr.With(domain.ErrManifestParseFailed, "reason", "dependency mapping key must be a string")
		return nil, zerr.With(err, "line", key.Line)
	}
	if value.Kind != yaml.SequenceNode {
		err := zerr.With(domain.ErrManifestParseFailed, "reason", "dependency mapping value must be a list of strings")
		err = zerr.With(err, "channel", key.Value)
		return nil, zerr.With(err, "line", value.Line)
	}

	constraints := make([]string, 0, len(value.Content))
	for _, item := range value.Content {
		if item.Kind != yaml.ScalarNode {
			err := zerr.With(domain.ErrManifestParseFailed, "reason", "dependency mapping value must be a list of strings")
			err = zerr.With(err, "channel", key.Value)
			return nil, zerr.With(err, "line", item.Line)
		}
		constraints = append(constraints, item.Value)
	}

	spec, err := domain.NewChanneledSpec(key.Value, constraints)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "line", key.Line)
	}
	return spec, nil
}
