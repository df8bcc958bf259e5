package guide_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/demoreel/pkg/domain"
	"github.com/aretw0/demoreel/pkg/guide"
)

func TestWrite_ExactContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, guide.FileName)

	n, err := guide.Write(path)
	require.NoError(t, err)
	assert.Equal(t, len(guide.Text), n)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, guide.Text, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not linger")
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), guide.FileName)
	require.NoError(t, os.WriteFile(path, []byte("stale notes"), 0o644))

	_, err := guide.Write(path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, guide.Text, string(got))
}

func TestWrite_MissingDirectory(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "public", "videos")
	path := filepath.Join(missing, guide.FileName)

	_, err := guide.Write(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "no file may be created")
	_, statErr = os.Stat(missing)
	assert.ErrorIs(t, statErr, fs.ErrNotExist, "the directory must not be created")
}

func TestText_ListsEveryVideoTarget(t *testing.T) {
	for _, name := range domain.VideoTargets {
		assert.True(t, strings.Contains(guide.Text, "`"+name+"`"), "guide should name %s", name)
	}
	assert.Contains(t, guide.Text, "`public/videos/`")
	assert.Contains(t, guide.Text, "ffmpeg -r 30 -f image2")
	assert.Contains(t, guide.Text, "frame_%04d.png")
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("..", "public", "videos", "video-creation-guide.md"), guide.DefaultPath)
}
