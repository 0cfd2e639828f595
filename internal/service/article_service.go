package service

import (
	"context"
	"fmt"
	"time"

	"journal/internal/authz"
	"journal/internal/cache"
	"journal/internal/content"
	"journal/internal/models"
	"journal/internal/repository"
	"journal/internal/validation"
)

// dateDisplayFormat is how article dates are rendered for readers.
const dateDisplayFormat = "January 2, 2006"

type ArticleService struct {
	articleRepo repository.ArticleRepository
	roleOf      func(ctx context.Context, userID uint) (models.UserRole, error)
}

type CreateArticleInput struct {
	UserID           uint
	Title            string
	Subtitle         string
	Slug             string
	Category         string
	Tags             []string
	Content          string
	HeroImage        string
	HeroImageCaption string
	Published        bool
	SEOTitle         string
	SEODescription   string
	SEOKeywords      string
	CanonicalURL     string
}

// UpdateArticleInput carries a partial update. Nil pointers mean "leave the
// field as it is".
type UpdateArticleInput struct {
	UserID           uint
	ArticleID        uint
	Title            *string
	Subtitle         *string
	Slug             *string
	Category         *string
	Tags             []string
	Content          *string
	HeroImage        *string
	HeroImageCaption *string
	Published        *bool
	SEOTitle         *string
	SEODescription   *string
	SEOKeywords      *string
	CanonicalURL     *string
}

type ListArticlesInput struct {
	Search   string
	Category string
	Tag      string
	Page     int
	Limit    int
}

// ListAdminArticlesInput lists for the admin area. Authors only see their
// own articles; admins and editors see everything.
type ListAdminArticlesInput struct {
	UserID   uint
	Search   string
	Category string
	Tag      string
	Page     int
	Limit    int
}

func NewArticleService(
	articleRepo repository.ArticleRepository,
	roleOf func(ctx context.Context, userID uint) (models.UserRole, error),
) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		roleOf:      roleOf,
	}
}

func (s *ArticleService) Create(ctx context.Context, in CreateArticleInput) (*models.Article, error) {
	if err := validateArticleFields(in.Title, in.Subtitle, in.Content, in.Category, in.Tags); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = content.GenerateSlug(in.Title)
	}
	if err := validation.ValidateSlug(slug); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	taken, err := s.articleRepo.SlugExists(ctx, slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.NewConflictError(fmt.Sprintf("Slug %q is already in use", slug))
	}

	article := &models.Article{
		Slug:             slug,
		Title:            in.Title,
		Subtitle:         in.Subtitle,
		Category:         in.Category,
		Tags:             models.StringList(in.Tags),
		Date:             time.Now().Format(dateDisplayFormat),
		ReadTime:         content.CalculateReadTime(in.Content),
		AuthorID:         &in.UserID,
		HeroImage:        in.HeroImage,
		HeroImageCaption: in.HeroImageCaption,
		Content:          in.Content,
		Published:        in.Published,
		SEOTitle:         in.SEOTitle,
		SEODescription:   in.SEODescription,
		SEOKeywords:      in.SEOKeywords,
		CanonicalURL:     in.CanonicalURL,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	cache.InvalidateArticle(ctx, article.Slug)
	return article, nil
}

// GetBySlug serves a single article. Drafts are invisible to unauthenticated
// readers; they get the same 404 as a missing slug so draft slugs leak
// nothing.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string, authenticated bool) (*models.Article, error) {
	if !authenticated {
		var cached models.Article
		if found, _ := cache.GetJSON(ctx, cache.ArticleKey(slug), &cached); found {
			return &cached, nil
		}
	}

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, models.NewNotFoundError("Article", slug)
	}
	if !authz.ArticleVisible(article, authenticated) {
		return nil, models.NewNotFoundError("Article", slug)
	}

	if article.Published && !authenticated {
		cache.SetJSON(ctx, cache.ArticleKey(slug), article, cache.ArticleTTL)
	}
	return article, nil
}

// ListPublished serves the public article listing. The unfiltered front page
// is cached; filtered listings always hit the database.
func (s *ArticleService) ListPublished(ctx context.Context, in ListArticlesInput) (*repository.ArticlePage, error) {
	req := repository.PageRequest{Page: in.Page, Limit: in.Limit}.Normalize()
	unfiltered := in.Search == "" && in.Category == "" && in.Tag == ""

	if unfiltered && req.Page == 1 {
		var cached repository.ArticlePage
		if found, _ := cache.GetJSON(ctx, cache.FrontPageKey(req.Limit), &cached); found {
			return &cached, nil
		}
	}

	page, err := s.articleRepo.List(ctx, repository.ArticleFilter{
		Search:        in.Search,
		Category:      in.Category,
		Tag:           in.Tag,
		PublishedOnly: true,
	}, req)
	if err != nil {
		return nil, err
	}

	if unfiltered && req.Page == 1 {
		cache.SetJSON(ctx, cache.FrontPageKey(req.Limit), page, cache.FrontPageTTL)
	}
	return page, nil
}

func (s *ArticleService) ListAdmin(ctx context.Context, in ListAdminArticlesInput) (*repository.ArticlePage, error) {
	role, err := s.roleOf(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	filter := repository.ArticleFilter{
		Search:   in.Search,
		Category: in.Category,
		Tag:      in.Tag,
	}
	if role == models.RoleAuthor {
		filter.AuthorID = &in.UserID
	}
	return s.articleRepo.List(ctx, filter, repository.PageRequest{Page: in.Page, Limit: in.Limit})
}

func (s *ArticleService) GetForEdit(ctx context.Context, userID, articleID uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return nil, models.NewNotFoundError("Article", articleID)
	}
	role, err := s.roleOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditArticle(article, userID, role) {
		return nil, models.NewForbiddenError("You cannot edit this article")
	}
	return article, nil
}

func (s *ArticleService) Update(ctx context.Context, in UpdateArticleInput) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, in.ArticleID)
	if err != nil {
		return nil, models.NewNotFoundError("Article", in.ArticleID)
	}

	role, err := s.roleOf(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditArticle(article, in.UserID, role) {
		return nil, models.NewForbiddenError("You cannot edit this article")
	}

	oldSlug := article.Slug

	if in.Title != nil {
		if err := validation.ValidateArticleTitle(*in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		article.Title = *in.Title
	}
	if in.Subtitle != nil {
		if err := validation.ValidateArticleSubtitle(*in.Subtitle); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		article.Subtitle = *in.Subtitle
	}
	if in.Category != nil {
		if err := validation.ValidateCategory(*in.Category); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		article.Category = *in.Category
	}
	if in.Tags != nil {
		if err := validation.ValidateTags(in.Tags); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		article.Tags = models.StringList(in.Tags)
	}
	if in.Content != nil {
		if err := validation.ValidateArticleContent(*in.Content); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		article.Content = *in.Content
		article.ReadTime = content.CalculateReadTime(*in.Content)
	}
	if in.Slug != nil && *in.Slug != article.Slug {
		if err := validation.ValidateSlug(*in.Slug); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		taken, err := s.articleRepo.SlugExists(ctx, *in.Slug, article.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.NewConflictError(fmt.Sprintf("Slug %q is already in use", *in.Slug))
		}
		article.Slug = *in.Slug
	}
	// Without an explicit slug, a renamed article gets its slug re-derived so
	// the two never drift apart.
	if in.Slug == nil && in.Title != nil {
		derived := content.GenerateSlug(article.Title)
		if derived != article.Slug {
			taken, err := s.articleRepo.SlugExists(ctx, derived, article.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, models.NewConflictError(fmt.Sprintf("Slug %q is already in use", derived))
			}
			article.Slug = derived
		}
	}
	if in.HeroImage != nil {
		article.HeroImage = *in.HeroImage
	}
	if in.HeroImageCaption != nil {
		article.HeroImageCaption = *in.HeroImageCaption
	}
	if in.Published != nil {
		article.Published = *in.Published
	}
	if in.SEOTitle != nil {
		article.SEOTitle = *in.SEOTitle
	}
	if in.SEODescription != nil {
		article.SEODescription = *in.SEODescription
	}
	if in.SEOKeywords != nil {
		article.SEOKeywords = *in.SEOKeywords
	}
	if in.CanonicalURL != nil {
		article.CanonicalURL = *in.CanonicalURL
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	cache.InvalidateArticle(ctx, oldSlug)
	if article.Slug != oldSlug {
		cache.InvalidateArticle(ctx, article.Slug)
	}
	return article, nil
}

func (s *ArticleService) Delete(ctx context.Context, userID, articleID uint) error {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		return models.NewNotFoundError("Article", articleID)
	}

	role, err := s.roleOf(ctx, userID)
	if err != nil {
		return err
	}
	if !authz.CanDeleteArticle(article, userID, role) {
		return models.NewForbiddenError("You cannot delete this article")
	}

	if err := s.articleRepo.Delete(ctx, articleID); err != nil {
		return err
	}
	cache.InvalidateArticle(ctx, article.Slug)
	return nil
}

// SetPublished flips the published flag through the regular update path so
// authorization and cache invalidation apply.
func (s *ArticleService) SetPublished(ctx context.Context, userID, articleID uint, published bool) (*models.Article, error) {
	return s.Update(ctx, UpdateArticleInput{
		UserID:    userID,
		ArticleID: articleID,
		Published: &published,
	})
}

func (s *ArticleService) Categories(ctx context.Context) ([]string, error) {
	var cached []string
	if found, _ := cache.GetJSON(ctx, cache.CategoriesKey, &cached); found {
		return cached, nil
	}
	categories, err := s.articleRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, cache.CategoriesKey, categories, cache.TaxonomyTTL)
	return categories, nil
}

func (s *ArticleService) Tags(ctx context.Context) ([]string, error) {
	var cached []string
	if found, _ := cache.GetJSON(ctx, cache.TagsKey, &cached); found {
		return cached, nil
	}
	tags, err := s.articleRepo.Tags(ctx)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, cache.TagsKey, tags, cache.TaxonomyTTL)
	return tags, nil
}

func validateArticleFields(title, subtitle, body, category string, tags []string) error {
	if err := validation.ValidateArticleTitle(title); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidateArticleSubtitle(subtitle); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidateArticleContent(body); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidateCategory(category); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidateTags(tags); err != nil {
		return models.NewValidationError(err.Error())
	}
	return nil
}
