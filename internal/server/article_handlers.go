package server

import (
	"journal/internal/authz"
	"journal/internal/models"
	"journal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// adminArticleItem decorates an article with what the caller may do to it, so
// clients do not have to re-implement the deletion policy.
type adminArticleItem struct {
	*models.Article
	CanDelete bool `json:"can_delete"`
}

// adminArticlePage mirrors repository.ArticlePage with decorated items.
type adminArticlePage struct {
	Items      []adminArticleItem `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	HasNext    bool               `json:"has_next"`
	HasPrev    bool               `json:"has_prev"`
}

// articleRequest is the JSON payload for creating and updating articles.
// Pointer fields distinguish "absent" from "explicitly empty" on update.
type articleRequest struct {
	Title            *string  `json:"title"`
	Subtitle         *string  `json:"subtitle"`
	Slug             *string  `json:"slug"`
	Category         *string  `json:"category"`
	Tags             []string `json:"tags"`
	Content          *string  `json:"content"`
	HeroImage        *string  `json:"hero_image"`
	HeroImageCaption *string  `json:"hero_image_caption"`
	Published        *bool    `json:"published"`
	SEOTitle         *string  `json:"seo_title"`
	SEODescription   *string  `json:"seo_description"`
	SEOKeywords      *string  `json:"seo_keywords"`
	CanonicalURL     *string  `json:"canonical_url"`
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// GetArticles handles GET /api/articles
// @Summary List published articles
// @Description Paginated list of published articles with optional search, category, and tag filters
// @Tags articles
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size (max 100)"
// @Param search query string false "Free-text search across title, subtitle, and content"
// @Param category query string false "Filter by category"
// @Param tag query string false "Filter by tag"
// @Success 200 {object} repository.ArticlePage
// @Router /articles [get]
func (s *Server) GetArticles(c *fiber.Ctx) error {
	req := parsePageRequest(c)
	page, err := s.articleService.ListPublished(c.Context(), service.ListArticlesInput{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(page)
}

// GetArticleBySlug handles GET /api/articles/:slug
// @Summary Get one article
// @Description Fetch a single article by slug. Drafts are only visible to authenticated users.
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} models.Article
// @Failure 404 {object} models.ErrorResponse
// @Router /articles/{slug} [get]
func (s *Server) GetArticleBySlug(c *fiber.Ctx) error {
	_, authenticated := s.optionalUserID(c)
	article, err := s.articleService.GetBySlug(c.Context(), c.Params("slug"), authenticated)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(article)
}

// GetCategories handles GET /api/articles/categories
// @Summary List categories
// @Description Distinct categories across published articles
// @Tags articles
// @Produce json
// @Success 200 {array} string
// @Router /articles/categories [get]
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.articleService.Categories(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(categories)
}

// GetTags handles GET /api/articles/tags
// @Summary List tags
// @Description Distinct tags across published articles
// @Tags articles
// @Produce json
// @Success 200 {array} string
// @Router /articles/tags [get]
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.articleService.Tags(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return c.JSON(tags)
}

// GetAdminArticles handles GET /api/admin/articles
// @Summary List articles for the admin area
// @Description Includes drafts. Authors only see their own articles.
// @Tags admin-articles
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Free-text search"
// @Param category query string false "Filter by category"
// @Param tag query string false "Filter by tag"
// @Success 200 {object} adminArticlePage
// @Failure 401 {object} models.ErrorResponse
// @Router /admin/articles [get]
func (s *Server) GetAdminArticles(c *fiber.Ctx) error {
	userID := currentUserID(c)
	req := parsePageRequest(c)
	page, err := s.articleService.ListAdmin(c.Context(), service.ListAdminArticlesInput{
		UserID:   userID,
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	role, err := s.userService.RoleOf(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	items := make([]adminArticleItem, 0, len(page.Items))
	for _, article := range page.Items {
		items = append(items, adminArticleItem{
			Article:   article,
			CanDelete: authz.CanDeleteArticle(article, userID, role),
		})
	}
	return c.JSON(adminArticlePage{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	})
}

// GetAdminArticle handles GET /api/admin/articles/:id
// @Summary Get one article for editing
// @Tags admin-articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/articles/{id} [get]
func (s *Server) GetAdminArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	article, err := s.articleService.GetForEdit(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(article)
}

// CreateArticle handles POST /api/admin/articles
// @Summary Create an article
// @Description Creates an article. Slug and read time are derived when absent.
// @Tags admin-articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body articleRequest true "Article fields"
// @Success 201 {object} models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/articles [post]
func (s *Server) CreateArticle(c *fiber.Ctx) error {
	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	published := false
	if req.Published != nil {
		published = *req.Published
	}

	article, err := s.articleService.Create(c.Context(), service.CreateArticleInput{
		UserID:           currentUserID(c),
		Title:            strOrEmpty(req.Title),
		Subtitle:         strOrEmpty(req.Subtitle),
		Slug:             strOrEmpty(req.Slug),
		Category:         strOrEmpty(req.Category),
		Tags:             req.Tags,
		Content:          strOrEmpty(req.Content),
		HeroImage:        strOrEmpty(req.HeroImage),
		HeroImageCaption: strOrEmpty(req.HeroImageCaption),
		Published:        published,
		SEOTitle:         strOrEmpty(req.SEOTitle),
		SEODescription:   strOrEmpty(req.SEODescription),
		SEOKeywords:      strOrEmpty(req.SEOKeywords),
		CanonicalURL:     strOrEmpty(req.CanonicalURL),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// UpdateArticle handles PUT /api/admin/articles/:id
// @Summary Update an article
// @Description Partial update. Absent fields keep their current value.
// @Tags admin-articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body articleRequest true "Fields to change"
// @Success 200 {object} models.Article
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/articles/{id} [put]
func (s *Server) UpdateArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req articleRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	article, err := s.articleService.Update(c.Context(), service.UpdateArticleInput{
		UserID:           currentUserID(c),
		ArticleID:        id,
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		Slug:             req.Slug,
		Category:         req.Category,
		Tags:             req.Tags,
		Content:          req.Content,
		HeroImage:        req.HeroImage,
		HeroImageCaption: req.HeroImageCaption,
		Published:        req.Published,
		SEOTitle:         req.SEOTitle,
		SEODescription:   req.SEODescription,
		SEOKeywords:      req.SEOKeywords,
		CanonicalURL:     req.CanonicalURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(article)
}

// DeleteArticle handles DELETE /api/admin/articles/:id
// @Summary Delete an article
// @Tags admin-articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/articles/{id} [delete]
func (s *Server) DeleteArticle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.articleService.Delete(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Article deleted"})
}

// PublishArticle handles POST /api/admin/articles/:id/publish
// @Summary Publish an article
// @Tags admin-articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/articles/{id}/publish [post]
func (s *Server) PublishArticle(c *fiber.Ctx) error {
	return s.setPublished(c, true)
}

// UnpublishArticle handles POST /api/admin/articles/:id/unpublish
// @Summary Unpublish an article
// @Tags admin-articles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} models.Article
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/articles/{id}/unpublish [post]
func (s *Server) UnpublishArticle(c *fiber.Ctx) error {
	return s.setPublished(c, false)
}

func (s *Server) setPublished(c *fiber.Ctx, published bool) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	article, err := s.articleService.SetPublished(c.Context(), currentUserID(c), id, published)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(article)
}
