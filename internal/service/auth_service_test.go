package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shopstock/internal/repository"
	"shopstock/internal/repository/sqlite"
	"shopstock/internal/service"
)

func newAuthService(t *testing.T) (service.AuthService, repository.UserRepository) {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := sqlite.NewUserRepository(db)
	require.NoError(t, users.Init(context.Background()))

	return service.NewAuthService(users), users
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "a@b.com", "Abc123!", "Al's")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	assert.NotEqual(t, "Abc123!", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Abc123!")))
	assert.Nil(t, user.RefreshToken)
}

func TestRegisterValidation(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name                              string
		username, email, password, shop   string
	}{
		{"bad email", "alice", "not-an-email", "Abc123!", "Al's"},
		{"weak password", "alice", "a@b.com", "password", "Al's"},
		{"missing username", "", "a@b.com", "Abc123!", "Al's"},
		{"missing shop name", "alice", "a@b.com", "Abc123!", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.email, tc.password, tc.shop)
			var validation service.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}

	// Validation failures never write anything.
	exists, err := users.ExistsByEmailOrUsername(ctx, "a@b.com", "alice")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegisterDuplicate(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@b.com", "Abc123!", "Al's")
	require.NoError(t, err)

	// Same email, different username.
	_, err = svc.Register(ctx, "alice2", "a@b.com", "Abc123!", "Al's")
	assert.ErrorIs(t, err, service.ErrUserExists)

	// Same username, different email.
	_, err = svc.Register(ctx, "alice", "other@b.com", "Abc123!", "Al's")
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "a@b.com", "Abc123!", "Al's")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "a@b.com", "Abc123!")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticateIndistinguishableFailures(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@b.com", "Abc123!", "Al's")
	require.NoError(t, err)

	// Wrong password for an existing account and an unknown email must
	// produce the same error, so callers cannot enumerate accounts.
	_, wrongPassword := svc.Authenticate(ctx, "a@b.com", "wrong1!A")
	_, unknownEmail := svc.Authenticate(ctx, "ghost@b.com", "wrong1!A")

	assert.ErrorIs(t, wrongPassword, service.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, service.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthenticateAppliesStrengthRules(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "a@b.com", "Abc123!", "Al's")
	require.NoError(t, err)

	// A weak-looking password is rejected before the hash comparison,
	// even if it were the stored one.
	_, err = svc.Authenticate(ctx, "a@b.com", "weak")
	var validation service.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestRefreshTokenLifecycle(t *testing.T) {
	svc, users := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "a@b.com", "Abc123!", "Al's")
	require.NoError(t, err)

	require.NoError(t, svc.StoreRefreshToken(ctx, user.ID, "first-session"))
	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, "first-session", *stored.RefreshToken)

	// A second login overwrites the previous session's token.
	require.NoError(t, svc.StoreRefreshToken(ctx, user.ID, "second-session"))
	stored, err = users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "second-session", *stored.RefreshToken)

	require.NoError(t, svc.ClearRefreshToken(ctx, user.ID))
	stored, err = users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.RefreshToken)
}
