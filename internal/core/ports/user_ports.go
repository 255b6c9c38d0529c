package ports

import (
	"context"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
)

// UserRepository returns a nil user and a nil error when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type UserService interface {
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
	// Authenticate returns nil without an error when the credentials do not match.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
