package ports

import "go.trai.ch/relock/internal/core/domain"

// ManifestReader defines the interface for loading the environment manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read parses the manifest at path.
	Read(path string) (*domain.Manifest, error)
}
