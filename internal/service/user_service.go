package service

import (
	"context"

	"journal/internal/authz"
	"journal/internal/models"
	"journal/internal/repository"
	"journal/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type UpdateProfileInput struct {
	UserID uint
	Name   string
	Image  string
}

type ChangePasswordInput struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

func NewUserService(userRepo repository.UserRepository, settingsRepo repository.SettingsRepository) *UserService {
	return &UserService{userRepo: userRepo, settingsRepo: settingsRepo}
}

// Signup registers a new account. The very first account becomes the admin;
// after that, registration can be switched off in the site settings.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		if !settings.AllowRegistration {
			return nil, models.NewForbiddenError("Registration is disabled")
		}
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := models.RoleAuthor
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. Wrong email and wrong password produce the
// same error so the endpoint cannot be used to probe for accounts.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = in.Name
	}
	if in.Image != "" {
		user.Image = in.Image
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) ChangePassword(ctx context.Context, in ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.CurrentPassword)); err != nil {
		return models.NewUnauthorizedError("Current password is incorrect")
	}
	if err := validation.ValidatePassword(in.NewPassword); err != nil {
		return models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	return s.userRepo.Update(ctx, user)
}

func (s *UserService) ListUsers(ctx context.Context, actorID uint) ([]*models.User, error) {
	if err := s.requireUserManager(ctx, actorID); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

// ChangeRole sets another user's role. Admins cannot change their own role,
// which keeps the site from losing its last admin by accident.
func (s *UserService) ChangeRole(ctx context.Context, actorID, targetID uint, role models.UserRole) (*models.User, error) {
	if err := s.requireUserManager(ctx, actorID); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, models.NewValidationError("Invalid role")
	}
	if actorID == targetID {
		return nil, models.NewForbiddenError("You cannot change your own role")
	}

	if err := s.userRepo.UpdateRole(ctx, targetID, role); err != nil {
		return nil, models.NewNotFoundError("User", targetID)
	}
	return s.userRepo.GetByID(ctx, targetID)
}

// DeleteUser removes an account. The target's articles and media survive
// with their owner link cleared.
func (s *UserService) DeleteUser(ctx context.Context, actorID, targetID uint) error {
	if err := s.requireUserManager(ctx, actorID); err != nil {
		return err
	}
	if actorID == targetID {
		return models.NewForbiddenError("You cannot delete your own account")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, targetID)
}

// RoleOf exposes role lookup for other services and middleware.
func (s *UserService) RoleOf(ctx context.Context, userID uint) (models.UserRole, error) {
	return s.userRepo.GetRole(ctx, userID)
}

func (s *UserService) requireUserManager(ctx context.Context, actorID uint) error {
	role, err := s.userRepo.GetRole(ctx, actorID)
	if err != nil {
		return err
	}
	if !authz.CanManageUsers(role) {
		return models.NewForbiddenError("Only admins can manage users")
	}
	return nil
}
