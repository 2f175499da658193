package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shopstock/internal/domain"
	"shopstock/internal/repository"
)

// AuthService describes user account lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password, shopName string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// StoreRefreshToken records the user's single live refresh token.
	// Concurrent logins race on this write; last one wins.
	StoreRefreshToken(ctx context.Context, id int64, token string) error
	// ClearRefreshToken ends the user's session for refresh purposes.
	// Already-issued access tokens remain valid until their own expiry.
	ClearRefreshToken(ctx context.Context, id int64) error
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Register(ctx context.Context, username, email, password, shopName string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	shopName = strings.TrimSpace(shopName)

	if username == "" {
		return nil, ValidationError("username is required")
	}
	if shopName == "" {
		return nil, ValidationError("shop name is required")
	}
	if !isValidEmail(email) {
		return nil, errInvalidEmail
	}
	if !isStrongPassword(password) {
		return nil, errWeakPassword
	}

	taken, err := s.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if taken {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		ShopName:     shopName,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		// Two racing registrations can both pass the existence check;
		// the unique index settles it.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)

	if !isValidEmail(email) {
		return nil, errInvalidEmail
	}
	// The supplied password is held to the registration strength rules
	// before it is ever compared against the stored hash. Inherited
	// behavior, kept as-is.
	if !isStrongPassword(password) {
		return nil, errWeakPassword
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *authService) StoreRefreshToken(ctx context.Context, id int64, token string) error {
	return s.users.SetRefreshToken(ctx, id, &token)
}

func (s *authService) ClearRefreshToken(ctx context.Context, id int64) error {
	return s.users.SetRefreshToken(ctx, id, nil)
}
