package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
	ids  ports.IDGenerator
}

func NewUserService(repo ports.UserRepository, ids ports.IDGenerator) ports.UserService {
	return &userService{
		repo: repo,
		ids:  ids,
	}
}

func (s *userService) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	user := &domain.User{
		ID:        s.ids.NewID(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if !errors.Is(err, domain.ErrDuplicateKey) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// Lost a race on the unique username index, or an id collision.
		existing, lookupErr := s.repo.GetByUsername(ctx, username)
		if lookupErr == nil && existing != nil {
			return nil, domain.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || user.Password != password {
		return nil, nil
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
