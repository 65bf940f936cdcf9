package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesDirectory(t *testing.T) {
	tmp := t.TempDir()

	target := filepath.Join(tmp, "downloads")
	got, err := EnsureDir(target)
	require.NoError(t, err)
	require.Equal(t, target, got)

	fi, err := os.Stat(target)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureDir_ExistingDirIsFine(t *testing.T) {
	tmp := t.TempDir()

	got, err := EnsureDir(tmp)
	require.NoError(t, err)
	require.Equal(t, tmp, got)
}

func TestEnsureSubDir(t *testing.T) {
	tmp := t.TempDir()

	got, err := EnsureSubDir(tmp, ".partial")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, ".partial"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}
