package repository

import (
	"context"
	"errors"
	"testing"

	"journal/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB wires Gorm to a sqlmock connection so driver failures can be
// scripted without a real database.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_GetByID_DriverErrorIsNotNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	driverErr := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(driverErr)

	_, err := repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, driverErr)

	var appErr *models.AppError
	assert.False(t, errors.As(err, &appErr), "driver failures must not surface as application errors")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_DriverError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	driverErr := errors.New("read timeout")
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(driverErr)

	user, err := repo.GetByEmail(context.Background(), "ada@example.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, driverErr)
}

func TestArticleRepository_List_DriverError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArticleRepository(db)

	driverErr := errors.New("server closed the connection unexpectedly")
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).WillReturnError(driverErr)

	_, err := repo.List(context.Background(), ArticleFilter{}, PageRequest{Page: 1, Limit: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, driverErr)
}

func TestMediaRepository_Stats_DriverError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMediaRepository(db)

	driverErr := errors.New("out of memory")
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count`).WillReturnError(driverErr)

	_, err := repo.Stats(context.Background())
	assert.ErrorIs(t, err, driverErr)
}
