package repository

import (
	"context"

	"shopstock/internal/domain"
)

// UserRepository exposes persistence operations for user accounts.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByEmailOrUsername reports whether any user already holds the
	// given email or username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	// SetRefreshToken stores the user's current refresh token; nil clears it.
	SetRefreshToken(ctx context.Context, id int64, token *string) error
}
