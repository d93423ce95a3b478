package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookshelf/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{})
	require.NoError(t, err)

	return NewRepository(db)
}

func TestRepository_CreateUser(t *testing.T) {
	repo := setupTestDB(t)

	user, err := repo.CreateUser("reader@example.com", "bcrypt-hash")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "reader@example.com", user.Email)
	assert.Equal(t, "bcrypt-hash", user.PasswordHash)
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.CreateUser("reader@example.com", "hash-one")
	require.NoError(t, err)

	_, err = repo.CreateUser("reader@example.com", "hash-two")
	assert.Error(t, err) // unique index on email
}

func TestRepository_GetUserByEmail(t *testing.T) {
	repo := setupTestDB(t)

	created, err := repo.CreateUser("reader@example.com", "bcrypt-hash")
	require.NoError(t, err)

	user, err := repo.GetUserByEmail("reader@example.com")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, created.PasswordHash, user.PasswordHash)
}

func TestRepository_GetUserByEmail_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetUserByEmail("stranger@example.com")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetUserByID(t *testing.T) {
	repo := setupTestDB(t)

	created, err := repo.CreateUser("reader@example.com", "bcrypt-hash")
	require.NoError(t, err)

	user, err := repo.GetUserByID(created.ID)

	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", user.Email)
}

func TestRepository_GetUserByID_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetUserByID(12345)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
