package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present")
	require.NoError(t, os.WriteFile(present, []byte("x"), 0o600))

	ok, err := Exists(present)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Exists(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCreateSecureFileHasOwnerOnlyPermissions(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "secret.key")

	f, err := CreateSecureFile(file)
	require.NoError(t, err)
	defer f.Close()

	info, err := os.Stat(file)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCreateSecureFileRejectsUnwritablePath(t *testing.T) {
	_, err := CreateSecureFile(filepath.Join(t.TempDir(), "missing-dir", "file.txt"))
	require.Error(t, err)
}
