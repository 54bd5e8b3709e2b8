package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvr-ai/go-filters/images"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirectoryImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.JPG", "notes.txt", "c.webp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	files, err := LoadDirectoryImageFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "a.JPG", files[0].Name)
	assert.Equal(t, images.FormatJPEG, files[0].Format)
	assert.Equal(t, []byte("a.JPG"), files[0].Data)
	assert.Equal(t, "b.png", files[1].Name)
	assert.Equal(t, "c.webp", files[2].Name)
	assert.Equal(t, filepath.Join(dir, "c.webp"), files[2].Path)
}

func TestLoadDirectoryImagesMissing(t *testing.T) {
	_, err := LoadDirectoryImageFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
