package service

import (
	"context"
	"strings"

	"eventpulse/internal/clock"
	"eventpulse/internal/model"
	"eventpulse/internal/repository"
	apperrors "eventpulse/pkg/app_errors"

	"github.com/google/uuid"
)

type UserService interface {
	GetCurrent(ctx context.Context) (*model.User, error)
	SaveCurrent(ctx context.Context, user *model.User) (*model.User, error)
}

type UserServiceImpl struct {
	store repository.UserStore
	clk   clock.Clock
}

func NewUserService(store repository.UserStore, clk clock.Clock) UserService {
	return &UserServiceImpl{store: store, clk: clk}
}

func (s *UserServiceImpl) GetCurrent(ctx context.Context) (*model.User, error) {
	return s.store.Get(ctx)
}

func (s *UserServiceImpl) SaveCurrent(ctx context.Context, user *model.User) (*model.User, error) {
	if strings.TrimSpace(user.Name) == "" {
		return nil, apperrors.NewValidationError("name", "name is required")
	}
	if strings.TrimSpace(user.Email) == "" {
		return nil, apperrors.NewValidationError("email", "email is required")
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
		user.CreatedAt = s.clk.Now()
	}
	if err := s.store.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
