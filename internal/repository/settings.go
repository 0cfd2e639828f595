package repository

import (
	"context"

	"journal/internal/models"

	"gorm.io/gorm"
)

// SettingsRepository defines storage operations for the site settings
// singleton row.
type SettingsRepository interface {
	// Get returns the settings row, creating it with defaults on first use.
	Get(ctx context.Context) (*models.SiteSettings, error)
	// Update applies the provided column values to the singleton row.
	Update(ctx context.Context, fields map[string]interface{}) (*models.SiteSettings, error)
}

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository returns a repository implementation for settings.
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.WithContext(ctx).First(&settings, "id = ?", models.SiteSettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	defaults := models.DefaultSiteSettings()
	if err := r.db.WithContext(ctx).Create(&defaults).Error; err != nil {
		// A concurrent request created the row between First and Create.
		// The primary key constraint guarantees a single row; re-read it.
		if isUniqueViolation(err) {
			var existing models.SiteSettings
			if rerr := r.db.WithContext(ctx).First(&existing, "id = ?", models.SiteSettingsID).Error; rerr != nil {
				return nil, rerr
			}
			return &existing, nil
		}
		return nil, err
	}
	return defaults, nil
}

func (r *settingsRepository) Update(ctx context.Context, fields map[string]interface{}) (*models.SiteSettings, error) {
	// Ensure the row exists before updating so a fresh database still
	// accepts the first write.
	if _, err := r.Get(ctx); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(&models.SiteSettings{}).
			Where("id = ?", models.SiteSettingsID).
			Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}

	var settings models.SiteSettings
	if err := r.db.WithContext(ctx).First(&settings, "id = ?", models.SiteSettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}
