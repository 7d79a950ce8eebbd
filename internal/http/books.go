package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/metadata"
)

// BooksController serves the personal book list pages: list, create, edit
// and delete.
type BooksController struct {
	store BookManagerStore
}

func NewBooksController(store BookManagerStore) *BooksController {
	return &BooksController{store: store}
}

// bookForm is the form body shared by the create and edit routes.
type bookForm struct {
	Title       string
	Author      string
	PublishDate string
	CoverURL    string
	Notes       string
	ISBN        string
}

func parseBookForm(c *gin.Context) bookForm {
	return bookForm{
		Title:       trimmedForm(c, "title"),
		Author:      trimmedForm(c, "author"),
		PublishDate: trimmedForm(c, "publish_date"),
		CoverURL:    trimmedForm(c, "cover_url"),
		Notes:       strings.TrimSpace(c.PostForm("notes")),
		ISBN:        trimmedForm(c, "isbn"),
	}
}

func (f bookForm) fields() books.BookFields {
	return books.BookFields{
		Title:       f.Title,
		Author:      f.Author,
		PublishDate: f.PublishDate,
		CoverURL:    f.CoverURL,
		Notes:       f.Notes,
	}
}

// ListBooks renders all books ordered by title, optionally filtered by the
// q query parameter.
func (controller *BooksController) ListBooks(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var (
		list []entities.Book
		err  error
	)
	if query == "" {
		list, err = controller.store.GetAllBooks()
	} else {
		list, err = controller.store.SearchBooks(query)
	}
	if err != nil {
		serverError(c, err, "list books", "Error loading books")
		return
	}

	c.HTML(http.StatusOK, "books", gin.H{
		"Books":      list,
		"TotalBooks": len(list),
		"Query":      query,
	})
}

// NewBookPage renders the blank creation form.
func (controller *BooksController) NewBookPage(c *gin.Context) {
	c.HTML(http.StatusOK, "new-book", gin.H{})
}

// CreateBook inserts a book from user-supplied fields and redirects to the
// list. An empty cover URL is persisted as the placeholder path.
func (controller *BooksController) CreateBook(c *gin.Context) {
	form := parseBookForm(c)

	if _, err := controller.store.CreateBook(form.fields()); err != nil {
		serverError(c, err, "create book", "Error saving book")
		return
	}

	c.Redirect(http.StatusFound, "/books")
}

// EditBookPage renders the edit form for one book, or 404.
func (controller *BooksController) EditBookPage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Book not found")
			return
		}
		serverError(c, err, "load book for edit", "Error loading book")
		return
	}

	c.HTML(http.StatusOK, "edit-book", gin.H{
		"Book": book,
		"ISBN": book.ISBNValue(),
	})
}

// UpdateBook overwrites a book's editable fields and reconciles its ISBN
// link, then redirects to the list. Unknown ids respond 404.
//
// The form ISBN goes through the same normalization as the lookup path, so
// an ISBN attached here is found by GET /book/:isbn instead of triggering a
// duplicate insert.
func (controller *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form := parseBookForm(c)

	if err := controller.store.UpdateBook(id, form.fields(), metadata.NormalizeISBN(form.ISBN)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Book not found")
			return
		}
		serverError(c, err, "update book", "Error saving book")
		return
	}

	c.Redirect(http.StatusFound, "/books")
}

// DeleteBook removes a book together with its ISBN row and redirects to
// the list.
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.DeleteBook(id); err != nil {
		serverError(c, err, "delete book", "Error deleting book")
		return
	}

	c.Redirect(http.StatusFound, "/books")
}
