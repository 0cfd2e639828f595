package repository

import (
	"context"
	"sort"
	"strings"

	"journal/internal/models"

	"gorm.io/gorm"
)

const (
	// DefaultPageLimit is applied when a page request carries no limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps the page size a caller can request.
	MaxPageLimit = 100
)

// ArticleFilter narrows an article listing. Zero values mean "no filter";
// filters are AND-composed.
type ArticleFilter struct {
	// Search matches title, subtitle, or content, case-insensitive.
	Search        string
	Category      string
	Tag           string
	AuthorID      *uint
	PublishedOnly bool
}

// PageRequest is a 1-indexed page selector.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the request into valid bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p PageRequest) offset() int {
	return (p.Page - 1) * p.Limit
}

// ArticlePage is one page of results plus pagination metadata. Total is
// counted independently of the page window.
type ArticlePage struct {
	Items      []*models.Article `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	HasNext    bool              `json:"has_next"`
	HasPrev    bool              `json:"has_prev"`
}

// NewArticlePage assembles pagination metadata for a result window.
func NewArticlePage(items []*models.Article, total int64, req PageRequest) *ArticlePage {
	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &ArticlePage{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}
}

// ArticleRepository defines storage operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error)
	List(ctx context.Context, filter ArticleFilter, req PageRequest) (*ArticlePage, error)
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository returns a repository implementation for articles.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Article{}).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter builds the WHERE clause for a listing query. Free-text search
// is an OR across the three text fields; everything else is AND-composed.
func applyFilter(q *gorm.DB, filter ArticleFilter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(subtitle) LIKE ? OR LOWER(content) LIKE ?",
			like, like, like,
		)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		// Tags are stored as a JSON array; membership is a substring match
		// on the quoted element.
		q = q.Where("tags LIKE ?", `%"`+filter.Tag+`"%`)
	}
	if filter.AuthorID != nil {
		q = q.Where("author_id = ?", *filter.AuthorID)
	}
	if filter.PublishedOnly {
		q = q.Where("published = ?", true)
	}
	return q
}

func (r *articleRepository) List(ctx context.Context, filter ArticleFilter, req PageRequest) (*ArticlePage, error) {
	req = req.Normalize()

	page, err := r.list(ctx, filter, req)
	if err == nil {
		return page, nil
	}

	// Tag/category columns may not exist mid-migration; retry without the
	// optional filters rather than failing the listing.
	if isSchemaMissingError(err) && (filter.Tag != "" || filter.Category != "") {
		degraded := filter
		degraded.Tag = ""
		degraded.Category = ""
		return r.list(ctx, degraded, req)
	}
	return nil, err
}

func (r *articleRepository) list(ctx context.Context, filter ArticleFilter, req PageRequest) (*ArticlePage, error) {
	var total int64
	countQ := applyFilter(r.db.WithContext(ctx).Model(&models.Article{}), filter)
	if err := countQ.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []*models.Article
	listQ := applyFilter(r.db.WithContext(ctx).Model(&models.Article{}), filter)
	err := listQ.
		Order("created_at DESC, id DESC").
		Limit(req.Limit).
		Offset(req.offset()).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return NewArticlePage(items, total, req), nil
}

func (r *articleRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("published = ? AND category <> ''", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		if isSchemaMissingError(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return categories, nil
}

func (r *articleRepository) Tags(ctx context.Context) ([]string, error) {
	var rawTags []string
	err := r.db.WithContext(ctx).
		Model(&models.Article{}).
		Where("published = ?", true).
		Pluck("tags", &rawTags).Error
	if err != nil {
		if isSchemaMissingError(err) {
			return []string{}, nil
		}
		return nil, err
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, raw := range rawTags {
		var list models.StringList
		if err := list.Scan(raw); err != nil {
			continue
		}
		for _, tag := range list {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, id).Error
}
