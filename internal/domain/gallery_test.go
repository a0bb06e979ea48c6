package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryImageFromDocument(t *testing.T) {
	resolver := &fakeResolver{}

	t.Run("with file", func(t *testing.T) {
		g := GalleryImageFromDocument(Document{
			ID:        "g-1",
			CreatedAt: "2025-03-01T00:00:00Z",
			Fields:    map[string]any{"title": "Inauguration", "fileId": "f-1"},
		}, resolver, "gallery")
		assert.Equal(t, "Inauguration", g.Title)
		require.NotNil(t, g.ImageURL)
		assert.Equal(t, "https://files.test/gallery/f-1", *g.ImageURL)
	})

	t.Run("untitled without file", func(t *testing.T) {
		g := GalleryImageFromDocument(Document{ID: "g-2", Fields: map[string]any{}}, resolver, "gallery")
		assert.Equal(t, "Untitled", g.Title)
		assert.Nil(t, g.ImageURL)
	})
}
