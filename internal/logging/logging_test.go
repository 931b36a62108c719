package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger := New("")
	require.NotNil(t, logger)
	logger.Debug("should go nowhere")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facet.log")

	logger := New(path)
	logger.Debug("segment rendered")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "segment rendered")
}

func TestNew_UnwritablePathFallsBackToNop(t *testing.T) {
	logger := New(filepath.Join(t.TempDir(), "no", "such", "dir", "facet.log"))
	require.NotNil(t, logger)
	logger.Debug("swallowed")
}
