package ghoutput_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relock/internal/adapters/ghoutput"
	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWriter_SetFlags_Appends(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("output flags", "env_relocked", true, "merge_as_admin", false)

	path := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(path, []byte("previous=step\n"), 0o600))

	w := ghoutput.NewWriter(path, mockLogger)
	require.NoError(t, w.SetFlags(true, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous=step\nenv_relocked=true\nmerge_as_admin=false\n", string(data))
}

func TestWriter_SetFlags_CreatesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	path := filepath.Join(t.TempDir(), "github_output")
	w := ghoutput.NewWriter("", mockLogger).WithPath(path)
	assert.Equal(t, path, w.Path())

	require.NoError(t, w.SetFlags(false, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env_relocked=false\nmerge_as_admin=false\n", string(data))
}

func TestWriter_SetFlags_NoPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("output flags", "env_relocked", true, "merge_as_admin", true)

	w := ghoutput.NewWriter("", mockLogger)
	require.NoError(t, w.SetFlags(true, true))
}

func TestWriter_SetFlags_Unwritable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	w := ghoutput.NewWriter(filepath.Join(t.TempDir(), "missing", "github_output"), mockLogger)
	err := w.SetFlags(true, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrOutputWriteFailed.Error())
}
