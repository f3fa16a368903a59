package medias

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore(t *testing.T) {
	origin := filepath.Join(t.TempDir(), "collection.media")

	s, err := NewFSStore(origin)
	require.NoError(t, err)
	assert.DirExists(t, origin)

	// Add a file
	err = s.PutObject("a.jpg", []byte("JPEG"))
	require.NoError(t, err)

	// Read the wrong file
	_, err = s.GetObject("b.jpg")
	require.ErrorIs(t, err, ErrObjectNotExist)

	// Read the correct file
	data, err := s.GetObject("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("JPEG"), data)

	// Saving twice is harmless
	err = s.PutObject("a.jpg", []byte("JPEG"))
	require.NoError(t, err)
	entries, err := os.ReadDir(origin)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Delete the file
	err = s.DeleteObject("a.jpg")
	require.NoError(t, err)

	// Delete a missing file
	err = s.DeleteObject("a.jpg")
	require.ErrorIs(t, err, ErrObjectNotExist)
}

func TestFSStoreNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

	_, err := NewFSStore(path)
	require.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.PutObject("b.gif", []byte("GIF")))
	require.NoError(t, s.PutObject("a.jpg", []byte("JPEG")))
	assert.Equal(t, []string{"a.jpg", "b.gif"}, s.Keys())

	data, err := s.GetObject("b.gif")
	require.NoError(t, err)
	assert.Equal(t, []byte("GIF"), data)

	_, err = s.GetObject("c.png")
	assert.ErrorIs(t, err, ErrObjectNotExist)

	require.NoError(t, s.DeleteObject("b.gif"))
	assert.ErrorIs(t, s.DeleteObject("b.gif"), ErrObjectNotExist)
	assert.Equal(t, []string{"a.jpg"}, s.Keys())
}

func TestMimeType(t *testing.T) {
	var tests = []struct {
		extension string
		expected  string
	}{
		{".jpg", "image/jpeg"},
		{".JPG", "image/jpeg"},
		{".gif", "image/gif"},
		{".png", "image/png"},
		{".unknown", "application/octet-stream"},
		{"", "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.extension, func(t *testing.T) {
			assert.Equal(t, tt.expected, MimeType(tt.extension))
		})
	}
	assert.True(t, IsImage(".webp"))
	assert.False(t, IsImage(".mp3"))
}
