package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinBelow(t *testing.T) {
	root := t.TempDir()

	t.Run("new and existing paths", func(t *testing.T) {
		got, err := JoinBelow(root, "docs/apis")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "docs", "apis"), got)

		require.NoError(t, os.WriteFile(filepath.Join(root, "mappings.js"), []byte("x"), 0o600))
		got, err = JoinBelow(root, "mappings.js")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "mappings.js"), got)
	})

	t.Run("relative root becomes absolute", func(t *testing.T) {
		got, err := JoinBelow("site", "docs")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), got)
	})

	t.Run("escapes rejected", func(t *testing.T) {
		for _, p := range []string{"", "../docs", "docs/../../x", "/etc/passwd"} {
			_, err := JoinBelow(root, p)
			assert.Error(t, err, p)
		}
	})

	t.Run("symlinks rejected", func(t *testing.T) {
		require.NoError(t, os.Mkdir(filepath.Join(root, "real"), 0o755))
		require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))

		_, err := JoinBelow(root, "link")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})
}

func TestStrictlyBelow(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "root")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs", "api"), 0o755))
	outside := filepath.Join(parent, "outside")
	require.NoError(t, os.Mkdir(outside, 0o755))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "escape")))

	tests := []struct {
		dir  string
		want bool
	}{
		{dir: filepath.Join(root, "docs"), want: true},
		{dir: filepath.Join(root, "docs", "api"), want: true},
		{dir: root, want: false},
		{dir: parent, want: false},
		{dir: outside, want: false},
		{dir: filepath.Join(root, "escape"), want: false},
		{dir: filepath.Join(root, "docs", "..", ".."), want: false},
	}
	for _, tt := range tests {
		got, err := StrictlyBelow(root, tt.dir)
		require.NoError(t, err, tt.dir)
		assert.Equal(t, tt.want, got, tt.dir)
	}

	_, err := StrictlyBelow(root, filepath.Join(root, "missing"))
	assert.Error(t, err)
}
