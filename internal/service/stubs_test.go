package service

import (
	"context"

	"journal/internal/models"
	"journal/internal/repository"
)

// articleRepoStub is a stub for repository.ArticleRepository.
type articleRepoStub struct {
	createFn     func(context.Context, *models.Article) error
	getByIDFn    func(context.Context, uint) (*models.Article, error)
	getBySlugFn  func(context.Context, string) (*models.Article, error)
	slugExistsFn func(context.Context, string, uint) (bool, error)
	listFn       func(context.Context, repository.ArticleFilter, repository.PageRequest) (*repository.ArticlePage, error)
	categoriesFn func(context.Context) ([]string, error)
	tagsFn       func(context.Context) ([]string, error)
	updateFn     func(context.Context, *models.Article) error
	deleteFn     func(context.Context, uint) error
}

func (s *articleRepoStub) Create(ctx context.Context, a *models.Article) error {
	return s.createFn(ctx, a)
}
func (s *articleRepoStub) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	return s.getByIDFn(ctx, id)
}
func (s *articleRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *articleRepoStub) SlugExists(ctx context.Context, slug string, excludeID uint) (bool, error) {
	return s.slugExistsFn(ctx, slug, excludeID)
}
func (s *articleRepoStub) List(ctx context.Context, f repository.ArticleFilter, req repository.PageRequest) (*repository.ArticlePage, error) {
	return s.listFn(ctx, f, req)
}
func (s *articleRepoStub) Categories(ctx context.Context) ([]string, error) {
	return s.categoriesFn(ctx)
}
func (s *articleRepoStub) Tags(ctx context.Context) ([]string, error) {
	return s.tagsFn(ctx)
}
func (s *articleRepoStub) Update(ctx context.Context, a *models.Article) error {
	return s.updateFn(ctx, a)
}
func (s *articleRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopArticleRepo() *articleRepoStub {
	return &articleRepoStub{
		createFn:     func(_ context.Context, _ *models.Article) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.Article, error) { return &models.Article{}, nil },
		getBySlugFn:  func(_ context.Context, _ string) (*models.Article, error) { return &models.Article{}, nil },
		slugExistsFn: func(_ context.Context, _ string, _ uint) (bool, error) { return false, nil },
		listFn: func(_ context.Context, _ repository.ArticleFilter, req repository.PageRequest) (*repository.ArticlePage, error) {
			return repository.NewArticlePage(nil, 0, req.Normalize()), nil
		},
		categoriesFn: func(_ context.Context) ([]string, error) { return nil, nil },
		tagsFn:       func(_ context.Context) ([]string, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Article) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	getRoleFn    func(context.Context, uint) (models.UserRole, error)
	listFn       func(context.Context) ([]*models.User, error)
	countFn      func(context.Context) (int64, error)
	updateFn     func(context.Context, *models.User) error
	updateRoleFn func(context.Context, uint, models.UserRole) error
	deleteFn     func(context.Context, uint) error
}

func (s *userRepoStub) Create(ctx context.Context, u *models.User) error { return s.createFn(ctx, u) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetRole(ctx context.Context, id uint) (models.UserRole, error) {
	return s.getRoleFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context) ([]*models.User, error) { return s.listFn(ctx) }
func (s *userRepoStub) Count(ctx context.Context) (int64, error)         { return s.countFn(ctx) }
func (s *userRepoStub) Update(ctx context.Context, u *models.User) error { return s.updateFn(ctx, u) }
func (s *userRepoStub) UpdateRole(ctx context.Context, id uint, role models.UserRole) error {
	return s.updateRoleFn(ctx, id, role)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getRoleFn:    func(_ context.Context, _ uint) (models.UserRole, error) { return models.RoleAuthor, nil },
		listFn:       func(_ context.Context) ([]*models.User, error) { return nil, nil },
		countFn:      func(_ context.Context) (int64, error) { return 1, nil },
		updateFn:     func(_ context.Context, _ *models.User) error { return nil },
		updateRoleFn: func(_ context.Context, _ uint, _ models.UserRole) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// mediaRepoStub is a stub for repository.MediaRepository.
type mediaRepoStub struct {
	createFn   func(context.Context, *models.Media) error
	getByIDFn  func(context.Context, uint) (*models.Media, error)
	getByURLFn func(context.Context, string) (*models.Media, error)
	listFn     func(context.Context, repository.MediaFilter, repository.PageRequest) (*repository.MediaPage, error)
	deleteFn   func(context.Context, uint) error
	statsFn    func(context.Context) (*repository.MediaStats, error)
}

func (s *mediaRepoStub) Create(ctx context.Context, m *models.Media) error {
	return s.createFn(ctx, m)
}
func (s *mediaRepoStub) GetByID(ctx context.Context, id uint) (*models.Media, error) {
	return s.getByIDFn(ctx, id)
}
func (s *mediaRepoStub) GetByURL(ctx context.Context, url string) (*models.Media, error) {
	return s.getByURLFn(ctx, url)
}
func (s *mediaRepoStub) List(ctx context.Context, f repository.MediaFilter, req repository.PageRequest) (*repository.MediaPage, error) {
	return s.listFn(ctx, f, req)
}
func (s *mediaRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *mediaRepoStub) Stats(ctx context.Context) (*repository.MediaStats, error) {
	return s.statsFn(ctx)
}

func noopMediaRepo() *mediaRepoStub {
	return &mediaRepoStub{
		createFn:   func(_ context.Context, _ *models.Media) error { return nil },
		getByIDFn:  func(_ context.Context, _ uint) (*models.Media, error) { return &models.Media{}, nil },
		getByURLFn: func(_ context.Context, _ string) (*models.Media, error) { return nil, nil },
		listFn: func(_ context.Context, _ repository.MediaFilter, _ repository.PageRequest) (*repository.MediaPage, error) {
			return &repository.MediaPage{}, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		statsFn:  func(_ context.Context) (*repository.MediaStats, error) { return &repository.MediaStats{}, nil },
	}
}

// settingsRepoStub is a stub for repository.SettingsRepository.
type settingsRepoStub struct {
	getFn    func(context.Context) (*models.SiteSettings, error)
	updateFn func(context.Context, map[string]interface{}) (*models.SiteSettings, error)
}

func (s *settingsRepoStub) Get(ctx context.Context) (*models.SiteSettings, error) {
	return s.getFn(ctx)
}
func (s *settingsRepoStub) Update(ctx context.Context, fields map[string]interface{}) (*models.SiteSettings, error) {
	return s.updateFn(ctx, fields)
}

func noopSettingsRepo() *settingsRepoStub {
	return &settingsRepoStub{
		getFn: func(_ context.Context) (*models.SiteSettings, error) {
			return models.DefaultSiteSettings(), nil
		},
		updateFn: func(_ context.Context, _ map[string]interface{}) (*models.SiteSettings, error) {
			return models.DefaultSiteSettings(), nil
		},
	}
}

// fixedRole returns a role lookup that always answers with the given role.
func fixedRole(role models.UserRole) func(context.Context, uint) (models.UserRole, error) {
	return func(_ context.Context, _ uint) (models.UserRole, error) {
		return role, nil
	}
}
