package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()

	require.Equal(t, "kctx", filepath.Base(paths.BaseDir))
	require.Equal(t, filepath.Join(paths.BaseDir, "state.json"), paths.StateFile)
	require.Equal(t, filepath.Join(paths.BaseDir, "config.toml"), paths.ConfigFile)
}
