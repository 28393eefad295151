package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_analysis/internal/feature/auth/domain/entity"
	"stock_analysis/internal/feature/auth/usecase"
)

// setupTestDB はテスト用のインメモリSQLiteデータベースをセットアップします。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}))
	return db
}

func TestUserMySQL_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@example.com", Password: "hashed"}))

	t.Run("duplicate email maps to ErrEmailAlreadyExists", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Email: "a@example.com", Password: "other"})
		assert.ErrorIs(t, err, usecase.ErrEmailAlreadyExists)
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@example.com", Password: "hashed"}))

	t.Run("found", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		assert.Equal(t, "hashed", got.Password)
	})

	t.Run("not found maps to ErrUserNotFound", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})
}

func TestUserMySQL_UpdateLastLogin(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserMySQL(db)
	ctx := context.Background()

	user := &entity.User{Email: "a@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(ctx, user))

	at := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateLastLogin(ctx, user.ID, at))

	got, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, got.LastLogin.Equal(at))
}
