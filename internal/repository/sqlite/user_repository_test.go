package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopstock/internal/domain"
	"shopstock/internal/repository"
)

func TestUserCreateAndGet(t *testing.T) {
	_, users, _ := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, users, "alice", "a@b.com")
	require.NotZero(t, user.ID)

	byID, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
	assert.Equal(t, "a@b.com", byID.Email)
	assert.Nil(t, byID.RefreshToken)

	byEmail, err := users.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserGetMissing(t *testing.T) {
	_, users, _ := newTestDB(t)
	ctx := context.Background()

	_, err := users.GetByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = users.GetByEmail(ctx, "nobody@nowhere.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserUniqueConstraints(t *testing.T) {
	_, users, _ := newTestDB(t)
	ctx := context.Background()

	createTestUser(t, users, "alice", "a@b.com")

	_, err := users.Create(ctx, &domain.User{
		Username:     "alice",
		Email:        "other@b.com",
		PasswordHash: "x",
		ShopName:     "x",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = users.Create(ctx, &domain.User{
		Username:     "bob",
		Email:        "a@b.com",
		PasswordHash: "x",
		ShopName:     "x",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserExistsByEmailOrUsername(t *testing.T) {
	_, users, _ := newTestDB(t)
	ctx := context.Background()

	createTestUser(t, users, "alice", "a@b.com")

	for _, tc := range []struct {
		email, username string
		want            bool
	}{
		{"a@b.com", "someone", true},
		{"new@b.com", "alice", true},
		{"a@b.com", "alice", true},
		{"new@b.com", "bob", false},
	} {
		got, err := users.ExistsByEmailOrUsername(ctx, tc.email, tc.username)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "email=%s username=%s", tc.email, tc.username)
	}
}

func TestSetRefreshToken(t *testing.T) {
	_, users, _ := newTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, users, "alice", "a@b.com")

	token := "refresh-token-value"
	require.NoError(t, users.SetRefreshToken(ctx, user.ID, &token))

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, token, *stored.RefreshToken)

	// Clearing is idempotent.
	require.NoError(t, users.SetRefreshToken(ctx, user.ID, nil))
	require.NoError(t, users.SetRefreshToken(ctx, user.ID, nil))

	stored, err = users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.RefreshToken)
}

func TestSetRefreshTokenMissingUser(t *testing.T) {
	_, users, _ := newTestDB(t)

	err := users.SetRefreshToken(context.Background(), 12345, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
