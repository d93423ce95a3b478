// Package books provides database operations for the book catalog.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBooks retrieves all books ordered by ascending ID.
func (r *Repository) ListBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Order("id ASC").Find(&books).Error
	return books, err
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook persists a new book; the ID is assigned by the database.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}

// UpdateBook sets exactly the supplied columns on the book with the given ID.
// Returns false when no such book exists. An empty field set is a no-op.
func (r *Repository) UpdateBook(id uint, fields map[string]any) (bool, error) {
	if len(fields) == 0 {
		var count int64
		err := r.db.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	}

	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteBook removes a book by ID. Returns false when no row existed.
func (r *Repository) DeleteBook(id uint) (bool, error) {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
