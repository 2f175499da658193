package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"shopstock/internal/domain"
	"shopstock/internal/repository"
)

// newTestDB opens a fresh in-memory database with both tables created.
func newTestDB(t *testing.T) (*sql.DB, repository.UserRepository, repository.ItemRepository) {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := NewUserRepository(db)
	items := NewItemRepository(db)
	ctx := context.Background()
	require.NoError(t, users.Init(ctx))
	require.NoError(t, items.Init(ctx))

	return db, users, items
}

func createTestUser(t *testing.T, users repository.UserRepository, username, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		ShopName:     username + "'s shop",
	}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return user
}
