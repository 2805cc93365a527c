package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	t.Run("walks directories recursively and filters by extension", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		a := touch(t, filepath.Join(dir, "a.hcl"))
		b := touch(t, filepath.Join(dir, "nested", "b.hcl"))
		touch(t, filepath.Join(dir, "notes.txt"))

		files, err := CollectFiles(".hcl", dir)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{a, b}, files)
	})

	t.Run("accepts direct file paths", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		a := touch(t, filepath.Join(dir, "a.hcl"))
		txt := touch(t, filepath.Join(dir, "skip.txt"))

		files, err := CollectFiles(".hcl", a, txt)
		require.NoError(t, err)
		assert.Equal(t, []string{a}, files, "non-matching direct files are filtered")
	})

	t.Run("deduplicates overlapping paths", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		a := touch(t, filepath.Join(dir, "a.hcl"))

		files, err := CollectFiles(".hcl", dir, a)
		require.NoError(t, err)
		assert.Equal(t, []string{a}, files)
	})

	t.Run("missing paths are skipped", func(t *testing.T) {
		t.Parallel()
		files, err := CollectFiles(".hcl", filepath.Join(t.TempDir(), "absent"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("empty extension panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			_, _ = CollectFiles("", t.TempDir())
		})
	})
}
