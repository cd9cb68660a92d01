package service

import (
	"context"
	"errors"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
)

// ErrSelfDemotion stops an administrator from toggling their own flag
// and locking the last admin out.
var ErrSelfDemotion = errors.New("cannot change your own administrator flag")

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) ToggleStatus(ctx context.Context, id string) (models.UserStatus, error) {
	return s.users.ToggleStatus(ctx, id)
}

func (s *UserService) ToggleAdmin(ctx context.Context, actorID string, id string) (bool, error) {
	if actorID == id {
		return false, ErrSelfDemotion
	}
	return s.users.ToggleAdmin(ctx, id)
}
