package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/validation"
)

// BookStore defines the interface for book data access.
type BookStore interface {
	ListBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	CreateBook(book *entities.Book) error
	UpdateBook(id uint, fields map[string]any) (bool, error)
	DeleteBook(id uint) (bool, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

func (controller *BooksController) ListBooks(c *gin.Context) {
	books, err := controller.store.ListBooks()
	if err != nil {
		log.Printf("failed to list books: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if books == nil {
		books = []entities.Book{}
	}
	c.JSON(http.StatusOK, books)
}

func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			return
		}
		log.Printf("failed to get book %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) CreateBook(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	input, err := validation.ValidateBook(payload, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := &entities.Book{
		Title:         *input.Title,
		Author:        *input.Author,
		Price:         *input.Price,
		PublishedYear: *input.PublishedYear,
	}
	if input.Description != nil {
		book.Description = *input.Description
	}

	if err := controller.store.CreateBook(book); err != nil {
		log.Printf("failed to create book: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBook overwrites exactly the supplied fields; fields the payload
// omits keep their stored values and are not re-validated.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	input, err := validation.ValidateBook(payload, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existed, err := controller.store.UpdateBook(id, input.Columns())
	if err != nil {
		log.Printf("failed to update book %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	book, err := controller.store.GetBookByID(id)
	if err != nil {
		log.Printf("failed to reload book %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, book)
}

func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	existed, err := controller.store.DeleteBook(id)
	if err != nil {
		log.Printf("failed to delete book %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// bookID parses the :id route parameter. Non-numeric ids behave like
// unknown ids and answer 404.
func bookID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return 0, false
	}
	return uint(id), true
}

// bindPayload decodes the request body into a JSON object. Anything that is
// not an object (missing body, arrays, scalars, malformed JSON) is rejected.
func bindPayload(c *gin.Context) (map[string]any, bool) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil || payload == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON body required"})
		return nil, false
	}
	return payload, true
}
