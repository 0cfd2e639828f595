package repository

import (
	"context"
	"errors"

	"journal/internal/models"

	"gorm.io/gorm"
)

// MediaFilter narrows a media listing.
type MediaFilter struct {
	// MimePrefix matches the start of the MIME type, e.g. "image/".
	MimePrefix string
	UploadedBy *uint
}

// MediaPage is one page of media rows plus pagination metadata.
type MediaPage struct {
	Items      []*models.Media `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	HasNext    bool            `json:"has_next"`
	HasPrev    bool            `json:"has_prev"`
}

// MediaStats summarizes the library for the admin dashboard.
type MediaStats struct {
	Count      int64 `json:"count"`
	TotalBytes int64 `json:"total_bytes"`
}

// MediaRepository defines storage operations for uploaded media.
type MediaRepository interface {
	Create(ctx context.Context, media *models.Media) error
	GetByID(ctx context.Context, id uint) (*models.Media, error)
	// GetByURL returns (nil, nil) when no row matches.
	GetByURL(ctx context.Context, url string) (*models.Media, error)
	List(ctx context.Context, filter MediaFilter, req PageRequest) (*MediaPage, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*MediaStats, error)
}

type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository returns a repository implementation for media.
func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *models.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepository) GetByID(ctx context.Context, id uint) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).Preload("Uploader").First(&media, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Media", id)
		}
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) GetByURL(ctx context.Context, url string) (*models.Media, error) {
	var media models.Media
	if err := r.db.WithContext(ctx).Where("url = ?", url).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

func applyMediaFilter(q *gorm.DB, filter MediaFilter) *gorm.DB {
	if filter.MimePrefix != "" {
		q = q.Where("mime_type LIKE ?", filter.MimePrefix+"%")
	}
	if filter.UploadedBy != nil {
		q = q.Where("uploaded_by = ?", *filter.UploadedBy)
	}
	return q
}

func (r *mediaRepository) List(ctx context.Context, filter MediaFilter, req PageRequest) (*MediaPage, error) {
	req = req.Normalize()

	var total int64
	countQ := applyMediaFilter(r.db.WithContext(ctx).Model(&models.Media{}), filter)
	if err := countQ.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []*models.Media
	listQ := applyMediaFilter(r.db.WithContext(ctx).Model(&models.Media{}), filter)
	err := listQ.
		Preload("Uploader").
		Order("created_at DESC, id DESC").
		Limit(req.Limit).
		Offset(req.offset()).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &MediaPage{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Media{}, id).Error
}

func (r *mediaRepository) Stats(ctx context.Context) (*MediaStats, error) {
	var stats MediaStats
	err := r.db.WithContext(ctx).
		Model(&models.Media{}).
		Select("COUNT(*) AS count, COALESCE(SUM(size), 0) AS total_bytes").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
