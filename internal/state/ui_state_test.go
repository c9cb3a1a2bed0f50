package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadNonExistent(t *testing.T) {
	state := Load(filepath.Join(t.TempDir(), "missing"))
	require.Equal(t, DefaultUIState(), state)
}

func TestSaveAndLoad(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	require.NoError(t, Save(dataDir, &UIState{Language: "ar", Skin: "desert"}))

	_, err := os.Stat(filepath.Join(dataDir, fileName))
	require.NoError(t, err, "state file should be created with its directory")

	loaded := Load(dataDir)
	require.Equal(t, "ar", loaded.Language)
	require.Equal(t, "desert", loaded.Skin)
}

func TestLoadCorrupted(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, fileName), []byte("{not json"), 0644))

	require.Equal(t, DefaultUIState(), Load(dataDir))
}

func TestSaveNormalizesAndReplaces(t *testing.T) {
	dataDir := t.TempDir()

	require.NoError(t, Save(dataDir, &UIState{Language: " AR ", Skin: "Midnight"}))
	require.NoError(t, Save(dataDir, &UIState{Language: "en"}))

	loaded := Load(dataDir)
	require.Equal(t, "en", loaded.Language)
	require.Empty(t, loaded.Skin)

	entries, err := os.ReadDir(dataDir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")
	require.Equal(t, Path(dataDir), filepath.Join(dataDir, entries[0].Name()))
}
