package storage

import (
	"regexp"
	"strings"
	"testing"

	"journal/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	keyPattern := regexp.MustCompile(`^uploads/\d+-[0-9a-f]{6}-[a-z0-9-]+\.[a-z0-9]+$`)

	tests := []struct {
		name     string
		filename string
	}{
		{"simple", "photo.jpg"},
		{"spaces and case", "My Vacation Photo.PNG"},
		{"unicode stripped", "café-menü.webp"},
		{"long name truncated", strings.Repeat("a", 200) + ".gif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateKey(tt.filename)
			assert.Regexp(t, keyPattern, key)
		})
	}

	// Two keys for the same filename never collide.
	assert.NotEqual(t, GenerateKey("photo.jpg"), GenerateKey("photo.jpg"))

	// A filename with no usable characters still yields a key.
	assert.Regexp(t, keyPattern, GenerateKey("日本語.png"))
}

func TestThumbnailKey(t *testing.T) {
	assert.Equal(t, "uploads/123-abc-photo-thumb.webp", ThumbnailKey("uploads/123-abc-photo.jpg"))
	assert.Equal(t, "uploads/x-thumb.webp", ThumbnailKey("uploads/x.webp"))
}

func TestAllowedMimeType(t *testing.T) {
	assert.True(t, AllowedMimeType("image/jpeg"))
	assert.True(t, AllowedMimeType("image/webp"))
	assert.True(t, AllowedMimeType("IMAGE/PNG"))
	assert.True(t, AllowedMimeType("image/svg+xml; charset=utf-8"))
	assert.False(t, AllowedMimeType("application/pdf"))
	assert.False(t, AllowedMimeType("video/mp4"))
	assert.False(t, AllowedMimeType(""))
}

func TestSniffMimeType(t *testing.T) {
	png := testutil.TinyPNG(t, 4, 4)
	assert.Equal(t, "image/png", SniffMimeType(png))

	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	assert.Equal(t, "image/svg+xml", SniffMimeType(svg))

	assert.NotEqual(t, "image/svg+xml", SniffMimeType([]byte("plain text, nothing else")))
}

func TestThumbnail_DownscalesLargeImages(t *testing.T) {
	src := testutil.TinyPNG(t, 1200, 600)

	thumb, err := Thumbnail(src)
	require.NoError(t, err)

	w, h := Dimensions(thumb)
	assert.Equal(t, ThumbnailMaxEdge, w)
	assert.Equal(t, 240, h)
}

func TestThumbnail_KeepsSmallImages(t *testing.T) {
	src := testutil.TinyPNG(t, 100, 80)

	thumb, err := Thumbnail(src)
	require.NoError(t, err)

	w, h := Dimensions(thumb)
	assert.Equal(t, 100, w)
	assert.Equal(t, 80, h)
}

func TestThumbnail_RejectsNonImages(t *testing.T) {
	_, err := Thumbnail([]byte("not an image"))
	assert.Error(t, err)
}

func TestDimensions_UnknownFormat(t *testing.T) {
	w, h := Dimensions([]byte("<svg></svg>"))
	assert.Zero(t, w)
	assert.Zero(t, h)
}
