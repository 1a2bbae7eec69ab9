package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/manifest"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/zerr"
)

const environmentYAML = `name: analysis
channels:
  - conda-forge
platforms:
  - linux-64
  - osx-arm64
  - linux-64
dependencies:
  - python 3.12.*
  - numpy>=1.26
  - conda-forge::scipy
  - pip
  - pip:
      - requests
      - rich>=13
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "environment.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestReader_Read(t *testing.T) {
	path := writeFile(t, environmentYAML)

	m, err := manifest.NewReader().Read(path)
	require.NoError(t, err)

	assert.Equal(t, "analysis", m.Name)
	assert.Equal(t, []string{"conda-forge"}, m.Channels)
	assert.Equal(t, []string{"linux-64", "osx-arm64"}, m.Platforms, "duplicates are dropped")
	require.Len(t, m.Dependencies, 5)

	simple, ok := m.Dependencies[0].(domain.SimpleSpec)
	require.True(t, ok)
	assert.Equal(t, "python 3.12.*", simple.Constraint)

	channeled, ok := m.Dependencies[4].(domain.ChanneledSpec)
	require.True(t, ok)
	assert.Equal(t, "pip", channeled.Channel)
	assert.Equal(t, []string{"requests", "rich>=13"}, channeled.Constraints)

	assert.Equal(t, []string{"python", "numpy", "scipy", "pip"}, m.DependencyNames())
}

func TestReader_Read_MissingFile(t *testing.T) {
	_, err := manifest.NewReader().Read(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestReadFailed.Error())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reason  string
	}{
		{
			name:    "empty document",
			content: "",
			reason:  "platforms must be a non-empty list",
		},
		{
			name:    "missing platforms",
			content: "dependencies:\n  - numpy\n",
			reason:  "platforms must be a non-empty list",
		},
		{
			name:    "empty platforms",
			content: "platforms: []\ndependencies:\n  - numpy\n",
			reason:  "platforms must be a non-empty list",
		},
		{
			name:    "platform is a mapping",
			content: "platforms:\n  - linux: 64\n",
			reason:  "platform must be a non-empty string",
		},
		{
			name:    "invalid yaml",
			content: "platforms: [linux-64\n",
		},
		{
			name:    "dependency is a list",
			content: "platforms: [linux-64]\ndependencies:\n  - [numpy, scipy]\n",
			reason:  "dependency must be a string or a single-key mapping",
		},
		{
			name:    "mapping with two keys",
			content: "platforms: [linux-64]\ndependencies:\n  - pip: [requests]\n    npm: [left-pad]\n",
			reason:  "dependency mapping must have exactly one key",
		},
		{
			name:    "mapping to a string",
			content: "platforms: [linux-64]\ndependencies:\n  - pip: requests\n",
			reason:  "dependency mapping value must be a list of strings",
		},
		{
			name:    "mapping to nested lists",
			content: "platforms: [linux-64]\ndependencies:\n  - pip:\n      - [requests]\n",
			reason:  "dependency mapping value must be a list of strings",
		},
		{
			name:    "constraint without name",
			content: "platforms: [linux-64]\ndependencies:\n  - \">=1.0\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tt.content))
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrManifestParseFailed.Error())

			if tt.reason != "" {
				zErr, ok := err.(*zerr.Error)
				require.True(t, ok, "expected *zerr.Error, got %T", err)
				assert.Equal(t, tt.reason, zErr.Metadata()["reason"])
			}
		})
	}
}

func TestParse_NoDependencies(t *testing.T) {
	m, err := manifest.Parse([]byte("platforms: [linux-64]\n"))
	require.NoError(t, err)
	assert.Empty(t, m.Dependencies)
	assert.Empty(t, m.DependencyNames())
}
