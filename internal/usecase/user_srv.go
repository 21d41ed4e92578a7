package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/internal/data/repository"
	"github.com/Colin-Stark/travelwise-server/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	DeleteByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{repo: repo, log: log}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, NewValidationError("Email query parameter is required")
	}
	if !utils.IsValidEmail(email) {
		return nil, NewValidationError("Please provide a valid email address")
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (s *userService) DeleteByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, NewValidationError("Email is required")
	}
	if !utils.IsValidEmail(email) {
		return nil, NewValidationError("Please provide a valid email address")
	}

	user, err := s.repo.User.DeleteByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("delete user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	s.log.Info("User deleted",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return user, nil
}
