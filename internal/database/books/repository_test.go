package books

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

	err = db.AutoMigrate(&entities.Book{})
	require.NoError(t, err)

	return NewRepository(db)
}

func sampleBook() *entities.Book {
	return &entities.Book{
		Title:         "The Go Programming Language",
		Author:        "Alan A. A. Donovan",
		Price:         34.99,
		PublishedYear: 2015,
		Description:   "The authoritative resource",
	}
}

func TestRepository_CreateAndGetBook(t *testing.T) {
	repo := setupTestDB(t)

	book := sampleBook()
	require.NoError(t, repo.CreateBook(book))
	assert.NotZero(t, book.ID)

	stored, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, stored) // round-trip
}

func TestRepository_GetBookByID_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetBookByID(12345)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_ListBooks_OrderedByID(t *testing.T) {
	repo := setupTestDB(t)

	for _, title := range []string{"Third", "First", "Second"} {
		book := sampleBook()
		book.Title = title
		require.NoError(t, repo.CreateBook(book))
	}

	books, err := repo.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 3)

	for i := 1; i < len(books); i++ {
		assert.Greater(t, books[i].ID, books[i-1].ID)
	}
}

func TestRepository_ListBooks_Empty(t *testing.T) {
	repo := setupTestDB(t)

	books, err := repo.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestRepository_UpdateBook_OnlySuppliedColumns(t *testing.T) {
	repo := setupTestDB(t)

	book := sampleBook()
	require.NoError(t, repo.CreateBook(book))

	existed, err := repo.UpdateBook(book.ID, map[string]any{"price": 5.0})
	require.NoError(t, err)
	assert.True(t, existed)

	updated, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, updated.Price)
	assert.Equal(t, book.Title, updated.Title)
	assert.Equal(t, book.Author, updated.Author)
	assert.Equal(t, book.PublishedYear, updated.PublishedYear)
	assert.Equal(t, book.Description, updated.Description)
}

func TestRepository_UpdateBook_Missing(t *testing.T) {
	repo := setupTestDB(t)

	existed, err := repo.UpdateBook(12345, map[string]any{"price": 5.0})

	require.NoError(t, err)
	assert.False(t, existed)
}

func TestRepository_UpdateBook_EmptyFieldSet(t *testing.T) {
	repo := setupTestDB(t)

	book := sampleBook()
	require.NoError(t, repo.CreateBook(book))

	existed, err := repo.UpdateBook(book.ID, map[string]any{})
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.UpdateBook(12345, map[string]any{})
	require.NoError(t, err)
	assert.False(t, existed)

	unchanged, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, book, unchanged)
}

func TestRepository_DeleteBook(t *testing.T) {
	repo := setupTestDB(t)

	book := sampleBook()
	require.NoError(t, repo.CreateBook(book))

	existed, err := repo.DeleteBook(book.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = repo.GetBookByID(book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	existed, err = repo.DeleteBook(book.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}
