package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/covers"
	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/metadata"
)

// LookupController serves the ISBN lookup form and the lookup flow itself.
type LookupController struct {
	store    LookupStore
	provider MetadataProvider
}

func NewLookupController(store LookupStore, provider MetadataProvider) *LookupController {
	return &LookupController{
		store:    store,
		provider: provider,
	}
}

// IndexPage renders the empty lookup form with the current shelf size.
func (controller *LookupController) IndexPage(c *gin.Context) {
	total, err := controller.store.CountBooks()
	if err != nil {
		serverError(c, err, "count books", "Error loading page")
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"TotalBooks": total,
	})
}

// BookByISBN renders the book for an ISBN. A stored book is rendered
// directly with no outbound call; otherwise the catalog is queried and the
// book is persisted (book + ISBN row in one transaction) before rendering.
// Catalog failures, including unknown ISBNs, surface as a generic 500.
func (controller *LookupController) BookByISBN(c *gin.Context) {
	isbn := metadata.NormalizeISBN(c.Param("isbn"))
	if isbn == "" {
		c.String(http.StatusBadRequest, "Invalid ISBN")
		return
	}

	stored, err := controller.store.FindByISBN(isbn)
	if err == nil {
		renderBook(c, stored)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		serverError(c, err, "lookup stored book", "Error fetching book details")
		return
	}

	meta, err := controller.provider.FetchByISBN(c.Request.Context(), isbn)
	if err != nil {
		serverError(c, err, "fetch book metadata", "Error fetching book details")
		return
	}

	book, err := controller.store.CreateBookWithISBN(books.BookFields{
		Title:       meta.Title,
		Author:      meta.Author,
		PublishDate: meta.PublishDate,
		CoverURL:    covers.URLForISBN(isbn),
	}, isbn)
	if err != nil {
		serverError(c, err, "save looked-up book", "Error fetching book details")
		return
	}

	renderBook(c, book)
}

func renderBook(c *gin.Context, book *entities.Book) {
	c.HTML(http.StatusOK, "book", gin.H{
		"Book": book,
	})
}
