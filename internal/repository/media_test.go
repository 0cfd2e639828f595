package repository

import (
	"context"
	"testing"

	"journal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaList_MimePrefixFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Media{Filename: "a.webp", URL: "u1", MimeType: "image/webp", Size: 100}))
	require.NoError(t, repo.Create(ctx, &models.Media{Filename: "b.png", URL: "u2", MimeType: "image/png", Size: 200}))
	require.NoError(t, repo.Create(ctx, &models.Media{Filename: "c.svg", URL: "u3", MimeType: "image/svg+xml", Size: 50}))

	page, err := repo.List(ctx, MediaFilter{MimePrefix: "image/"}, PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)

	page, err = repo.List(ctx, MediaFilter{MimePrefix: "image/webp"}, PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a.webp", page.Items[0].Filename)
}

func TestMediaGetByURL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Media{Filename: "a.webp", URL: "https://cdn/a", MimeType: "image/webp"}))

	got, err := repo.GetByURL(ctx, "https://cdn/a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a.webp", got.Filename)

	got, err = repo.GetByURL(ctx, "https://cdn/missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMediaStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMediaRepository(db)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Count)
	assert.Equal(t, int64(0), stats.TotalBytes)

	require.NoError(t, repo.Create(ctx, &models.Media{Filename: "a", URL: "u1", MimeType: "image/webp", Size: 1000}))
	require.NoError(t, repo.Create(ctx, &models.Media{Filename: "b", URL: "u2", MimeType: "image/png", Size: 2500}))

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Count)
	assert.Equal(t, int64(3500), stats.TotalBytes)
}
