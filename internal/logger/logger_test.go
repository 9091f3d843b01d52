package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "server.log")

	require.NoError(t, Init(path))
	t.Cleanup(Close)

	assert.Equal(t, path, Path())
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestInitEmptyPathStaysOnStderr(t *testing.T) {
	require.NoError(t, Init(""))
	assert.Empty(t, Path())
}
