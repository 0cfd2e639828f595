package seed

import (
	"testing"

	"journal/internal/database"
	"journal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(database.Models()...))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.ClearAll())
	require.NoError(t, s.Run(10))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(2), userCount)

	var articleCount int64
	require.NoError(t, db.Model(&models.Article{}).Count(&articleCount).Error)
	assert.Equal(t, int64(13), articleCount)

	var showcase models.Article
	require.NoError(t, db.Where("slug = ?", "finding-peace-in-chaos").First(&showcase).Error)
	assert.Equal(t, "Mindfulness", showcase.Category)
	assert.True(t, showcase.Published)
	assert.NotEmpty(t, showcase.ReadTime)

	var settingsCount int64
	require.NoError(t, db.Model(&models.SiteSettings{}).Count(&settingsCount).Error)
	assert.Equal(t, int64(1), settingsCount)
}

func TestFactoryBuildArticle(t *testing.T) {
	db := setupSeedDB(t)
	f := NewFactory(db)

	article := f.BuildArticle(nil)
	assert.NotEmpty(t, article.Slug)
	assert.NotEmpty(t, article.Title)
	assert.NotEmpty(t, article.Content)
	assert.NotEmpty(t, article.ReadTime)
	assert.NotEmpty(t, article.Tags)
	assert.Contains(t, seedCategories, article.Category)
}
