package repository

import (
	"context"
	"fmt"
	"testing"

	"journal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedArticles(t *testing.T, repo ArticleRepository, n int, published bool) []*models.Article {
	t.Helper()
	ctx := context.Background()
	articles := make([]*models.Article, 0, n)
	for i := 1; i <= n; i++ {
		a := &models.Article{
			Slug:      fmt.Sprintf("article-%d-%v", i, published),
			Title:     fmt.Sprintf("Article %d", i),
			Category:  "General",
			Tags:      models.StringList{"daily"},
			Content:   "<p>Body text.</p>",
			Published: published,
		}
		require.NoError(t, repo.Create(ctx, a))
		articles = append(articles, a)
	}
	return articles
}

func TestArticleList_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	seedArticles(t, repo, 25, true)

	filter := ArticleFilter{PublishedOnly: true}

	page1, err := repo.List(ctx, filter, PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page1.Items, 10)
	assert.Equal(t, int64(25), page1.Total)
	assert.Equal(t, 3, page1.TotalPages)
	assert.True(t, page1.HasNext)
	assert.False(t, page1.HasPrev)

	page3, err := repo.List(ctx, filter, PageRequest{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page3.Items, 5)
	assert.False(t, page3.HasNext)
	assert.True(t, page3.HasPrev)

	// A page past the end is empty but keeps the totals.
	page4, err := repo.List(ctx, filter, PageRequest{Page: 4, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, page4.Items)
	assert.Equal(t, int64(25), page4.Total)
	assert.False(t, page4.HasNext)
}

func TestArticleList_ExcludesDrafts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	seedArticles(t, repo, 3, true)
	seedArticles(t, repo, 2, false)

	page, err := repo.List(ctx, ArticleFilter{PublishedOnly: true}, PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)

	all, err := repo.List(ctx, ArticleFilter{}, PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), all.Total)
}

func TestArticleList_SearchAndCategoryCompose(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Article{
		Slug:      "finding-peace-in-chaos",
		Title:     "Finding Peace In Chaos",
		Category:  "Mindfulness",
		Tags:      models.StringList{"calm", "mindfulness"},
		Content:   "<p>On stillness.</p>",
		Published: true,
	}))
	require.NoError(t, repo.Create(ctx, &models.Article{
		Slug:      "peace-treaties-of-europe",
		Title:     "Peace Treaties of Europe",
		Category:  "History",
		Content:   "<p>Westphalia and after.</p>",
		Published: true,
	}))
	require.NoError(t, repo.Create(ctx, &models.Article{
		Slug:      "morning-rituals",
		Title:     "Morning Rituals",
		Category:  "Mindfulness",
		Content:   "<p>Small habits.</p>",
		Published: true,
	}))

	// Search alone matches both "peace" titles, case-insensitive.
	page, err := repo.List(ctx, ArticleFilter{Search: "PEACE", PublishedOnly: true}, PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	// Search and category narrow each other.
	page, err = repo.List(ctx, ArticleFilter{Search: "peace", Category: "Mindfulness", PublishedOnly: true}, PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "finding-peace-in-chaos", page.Items[0].Slug)

	// Search also reaches into content.
	page, err = repo.List(ctx, ArticleFilter{Search: "westphalia", PublishedOnly: true}, PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "peace-treaties-of-europe", page.Items[0].Slug)
}

func TestArticleList_TagFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Article{
		Slug:      "a",
		Title:     "A",
		Tags:      models.StringList{"calm", "mindfulness"},
		Published: true,
	}))
	require.NoError(t, repo.Create(ctx, &models.Article{
		Slug:      "b",
		Title:     "B",
		Tags:      models.StringList{"travel"},
		Published: true,
	}))

	page, err := repo.List(ctx, ArticleFilter{Tag: "calm", PublishedOnly: true}, PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].Slug)

	// An unmatched tag yields an empty page, not an error.
	page, err = repo.List(ctx, ArticleFilter{Tag: "nonexistent", PublishedOnly: true}, PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
}

func TestArticleList_OrderIsStable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	seedArticles(t, repo, 12, true)

	first, err := repo.List(ctx, ArticleFilter{}, PageRequest{Page: 1, Limit: 5})
	require.NoError(t, err)
	second, err := repo.List(ctx, ArticleFilter{}, PageRequest{Page: 2, Limit: 5})
	require.NoError(t, err)

	seen := make(map[uint]bool)
	for _, a := range append(first.Items, second.Items...) {
		assert.False(t, seen[a.ID], "article %d appeared on two pages", a.ID)
		seen[a.ID] = true
	}

	// Newest first: within equal timestamps the higher id wins.
	for i := 1; i < len(first.Items); i++ {
		prev, cur := first.Items[i-1], first.Items[i]
		if prev.CreatedAt.Equal(cur.CreatedAt) {
			assert.Greater(t, prev.ID, cur.ID)
		} else {
			assert.True(t, prev.CreatedAt.After(cur.CreatedAt))
		}
	}
}

func TestArticleSlugExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	a := &models.Article{Slug: "taken", Title: "Taken"}
	require.NoError(t, repo.Create(ctx, a))

	exists, err := repo.SlugExists(ctx, "taken", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// The article's own slug does not collide with itself on update.
	exists, err = repo.SlugExists(ctx, "taken", a.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.SlugExists(ctx, "free", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestArticleCategoriesAndTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewArticleRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Article{
		Slug: "a", Title: "A", Category: "Mindfulness",
		Tags: models.StringList{"calm", "slow"}, Published: true,
	}))
	require.NoError(t, repo.Create(ctx, &models.Article{
		Slug: "b", Title: "B", Category: "History",
		Tags: models.StringList{"calm", "europe"}, Published: true,
	}))
	require.NoError(t, repo.Create(ctx, &models.Article{
		Slug: "c", Title: "C", Category: "Drafts",
		Tags: models.StringList{"hidden"}, Published: false,
	}))

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"History", "Mindfulness"}, categories)

	tags, err := repo.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"calm", "europe", "slow"}, tags)
}
