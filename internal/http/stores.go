package http

import (
	"context"

	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/metadata"
)

// This file consolidates the interface definitions used by HTTP controllers.
// Each controller depends only on the operations it actually performs; the
// books repository satisfies all store interfaces.

// MetadataProvider resolves book metadata from the external catalog.
type MetadataProvider interface {
	FetchByISBN(ctx context.Context, isbn string) (*metadata.BookMetadata, error)
}

// LookupStore covers the ISBN lookup flow: check for a stored book first,
// persist book and ISBN together after a catalog hit.
type LookupStore interface {
	FindByISBN(isbn string) (*entities.Book, error)
	CreateBookWithISBN(fields books.BookFields, isbn string) (*entities.Book, error)
	CountBooks() (int64, error)
}

// BookManagerStore covers the personal book list pages.
type BookManagerStore interface {
	GetBookByID(id uint) (*entities.Book, error)
	GetAllBooks() ([]entities.Book, error)
	SearchBooks(query string) ([]entities.Book, error)
	CreateBook(fields books.BookFields) (*entities.Book, error)
	UpdateBook(id uint, fields books.BookFields, isbn string) error
	DeleteBook(id uint) error
}

// Pinger reports database liveness for the health endpoint.
type Pinger interface {
	Ping() error
}
