// Package authz holds the pure authorization predicates consumed by every
// handler and service. Role string comparisons live here and nowhere else.
package authz

import "journal/internal/models"

// CanEditArticle reports whether the actor may modify the article.
// Admins and editors may edit anything; authors only their own.
func CanEditArticle(article *models.Article, userID uint, role models.UserRole) bool {
	if role == models.RoleAdmin || role == models.RoleEditor {
		return true
	}
	return article.OwnedBy(userID)
}

// CanDeleteArticle reports whether the actor may delete the article.
// Editors may edit any article but delete only their own; the asymmetry
// with CanEditArticle is intentional policy.
func CanDeleteArticle(article *models.Article, userID uint, role models.UserRole) bool {
	if role == models.RoleAdmin {
		return true
	}
	return article.OwnedBy(userID)
}

// CanManageUsers reports whether the actor may list users, change roles,
// or delete accounts.
func CanManageUsers(role models.UserRole) bool {
	return role == models.RoleAdmin
}

// CanManageSettings reports whether the actor may update the site settings
// singleton.
func CanManageSettings(role models.UserRole) bool {
	return role == models.RoleAdmin || role == models.RoleEditor
}

// CanDeleteMedia reports whether the actor may remove an uploaded object.
// Admins and editors always may; uploaders may remove their own.
func CanDeleteMedia(media *models.Media, userID uint, role models.UserRole) bool {
	if role == models.RoleAdmin || role == models.RoleEditor {
		return true
	}
	return media.UploadedBy != nil && *media.UploadedBy == userID
}

// ArticleVisible reports whether a viewer may see the article. Drafts are
// visible to any authenticated viewer, published articles to everyone.
func ArticleVisible(article *models.Article, authenticated bool) bool {
	return article.Published || authenticated
}
