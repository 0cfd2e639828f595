package authz

import (
	"testing"

	"journal/internal/models"

	"github.com/stretchr/testify/assert"
)

func articleOwnedBy(userID uint) *models.Article {
	return &models.Article{ID: 1, AuthorID: &userID}
}

func TestArticlePermissionMatrix(t *testing.T) {
	const actorID = uint(10)
	const otherID = uint(20)

	tests := []struct {
		name      string
		role      models.UserRole
		owner     bool
		canEdit   bool
		canDelete bool
	}{
		{name: "Admin Owner", role: models.RoleAdmin, owner: true, canEdit: true, canDelete: true},
		{name: "Admin Not Owner", role: models.RoleAdmin, owner: false, canEdit: true, canDelete: true},
		{name: "Editor Owner", role: models.RoleEditor, owner: true, canEdit: true, canDelete: true},
		{name: "Editor Not Owner", role: models.RoleEditor, owner: false, canEdit: true, canDelete: false},
		{name: "Author Owner", role: models.RoleAuthor, owner: true, canEdit: true, canDelete: true},
		{name: "Author Not Owner", role: models.RoleAuthor, owner: false, canEdit: false, canDelete: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ownerID := otherID
			if tt.owner {
				ownerID = actorID
			}
			article := articleOwnedBy(ownerID)

			assert.Equal(t, tt.canEdit, CanEditArticle(article, actorID, tt.role))
			assert.Equal(t, tt.canDelete, CanDeleteArticle(article, actorID, tt.role))
		})
	}
}

func TestArticlePermissions_OrphanedArticle(t *testing.T) {
	// AuthorID nil (owner deleted): only admins and editors can touch it.
	article := &models.Article{ID: 1}

	assert.True(t, CanEditArticle(article, 10, models.RoleAdmin))
	assert.True(t, CanEditArticle(article, 10, models.RoleEditor))
	assert.False(t, CanEditArticle(article, 10, models.RoleAuthor))

	assert.True(t, CanDeleteArticle(article, 10, models.RoleAdmin))
	assert.False(t, CanDeleteArticle(article, 10, models.RoleEditor))
	assert.False(t, CanDeleteArticle(article, 10, models.RoleAuthor))
}

func TestCanManageUsers(t *testing.T) {
	assert.True(t, CanManageUsers(models.RoleAdmin))
	assert.False(t, CanManageUsers(models.RoleEditor))
	assert.False(t, CanManageUsers(models.RoleAuthor))
}

func TestCanManageSettings(t *testing.T) {
	assert.True(t, CanManageSettings(models.RoleAdmin))
	assert.True(t, CanManageSettings(models.RoleEditor))
	assert.False(t, CanManageSettings(models.RoleAuthor))
}

func TestCanDeleteMedia(t *testing.T) {
	uploader := uint(10)
	media := &models.Media{ID: 1, UploadedBy: &uploader}

	assert.True(t, CanDeleteMedia(media, 99, models.RoleAdmin))
	assert.True(t, CanDeleteMedia(media, 99, models.RoleEditor))
	assert.True(t, CanDeleteMedia(media, 10, models.RoleAuthor))
	assert.False(t, CanDeleteMedia(media, 99, models.RoleAuthor))

	orphan := &models.Media{ID: 2}
	assert.True(t, CanDeleteMedia(orphan, 10, models.RoleEditor))
	assert.False(t, CanDeleteMedia(orphan, 10, models.RoleAuthor))
}

func TestArticleVisible(t *testing.T) {
	published := &models.Article{Published: true}
	draft := &models.Article{Published: false}

	assert.True(t, ArticleVisible(published, false))
	assert.True(t, ArticleVisible(published, true))
	assert.False(t, ArticleVisible(draft, false))
	assert.True(t, ArticleVisible(draft, true))
}
