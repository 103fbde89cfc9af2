package service

import (
	"context"
	"errors"

	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/hrm8/hrm8-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, login, password string, role models.UserRole) error
	Authenticate(ctx context.Context, login, password string) error
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	EnsureAdmin(ctx context.Context, login, password string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates an actor account. Admin accounts are never created
// through the public endpoint; see EnsureAdmin.
func (s *userService) Register(ctx context.Context, login, password string, role models.UserRole) error {
	if !role.IsActor() {
		return apperrors.ErrInvalidRole
	}
	return s.createUser(ctx, login, password, role)
}

func (s *userService) createUser(ctx context.Context, login, password string, role models.UserRole) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Login:    login,
		Password: string(hashedPassword),
		Role:     role,
	}

	return s.repo.CreateUser(ctx, user)
}

func (s *userService) Authenticate(ctx context.Context, login, password string) error {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	return nil
}

func (s *userService) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.repo.GetUserByLogin(ctx, login)
}

// EnsureAdmin seeds the configured admin account on startup. An
// existing account is left untouched; an empty password disables the
// seed entirely.
func (s *userService) EnsureAdmin(ctx context.Context, login, password string) error {
	if password == "" {
		logger.Log.Warn("admin password not configured, skipping admin seed")
		return nil
	}

	err := s.createUser(ctx, login, password, models.RoleAdmin)
	if errors.Is(err, apperrors.ErrUserAlreadyExists) {
		return nil
	}
	return err
}
