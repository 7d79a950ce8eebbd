// Package books provides database operations for the personal book list.
//
// The repository is the sole writer for the books and isbns tables; HTTP
// controllers only reach storage through the interfaces it satisfies.
// Multi-statement sequences (create book + link ISBN, edit + relink,
// cascade delete) run inside a single transaction so a failing step never
// leaves related rows inconsistent.
package books

import (
	"strings"

	"gorm.io/gorm"

	"github.com/openshelf/openshelf/internal/covers"
	"github.com/openshelf/openshelf/internal/entities"
)

// BookFields are the editable fields accepted from forms and the metadata
// lookup flow.
type BookFields struct {
	Title       string
	Author      string
	PublishDate string
	CoverURL    string
	Notes       string
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new book repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByISBN returns the book linked to the given ISBN, joining through the
// isbns table. Returns gorm.ErrRecordNotFound when no book is linked.
func (r *Repository) FindByISBN(isbn string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("ISBN").
		Joins("JOIN isbns ON isbns.book_id = books.id").
		Where("isbns.isbn = ?", isbn).
		First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBookByID retrieves a book with its ISBN row.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("ISBN").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks returns every book with its ISBN row, ordered by title.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("ISBN").Order("title ASC").Find(&books).Error
	return books, err
}

// SearchBooks returns books whose title or author matches the query,
// case-insensitively, ordered by title.
func (r *Repository) SearchBooks(query string) ([]entities.Book, error) {
	var books []entities.Book
	pattern := "%" + query + "%"
	err := r.db.Preload("ISBN").
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", pattern, pattern).
		Order("title ASC").
		Find(&books).Error
	return books, err
}

// CountBooks returns the total number of books.
func (r *Repository) CountBooks() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// CreateBook inserts a book from user-supplied fields. An empty cover URL
// is replaced with the placeholder so cover_url is never stored empty.
func (r *Repository) CreateBook(fields BookFields) (*entities.Book, error) {
	book := newBook(fields)
	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// CreateBookWithISBN inserts a book and its ISBN row in one transaction.
func (r *Repository) CreateBookWithISBN(fields BookFields, isbn string) (*entities.Book, error) {
	book := newBook(fields)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(book).Error; err != nil {
			return err
		}
		record := &entities.ISBN{ISBN: isbn, BookID: book.ID}
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		book.ISBN = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook overwrites a book's editable fields and reconciles its ISBN row,
// all in one transaction.
//
// A non-blank isbn is upserted against the book's single ISBN row; the cover
// URL is recomputed from the ISBN only when the submitted cover field is
// blank or still the placeholder, so a user-chosen cover survives the edit.
// A blank isbn removes any ISBN row and forces the placeholder cover.
//
// Returns gorm.ErrRecordNotFound when no book exists for the id.
func (r *Repository) UpdateBook(id uint, fields BookFields, isbn string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}

		book.Title = fields.Title
		book.Author = fields.Author
		book.PublishDate = fields.PublishDate
		book.Notes = fields.Notes

		if isbn != "" {
			book.CoverURL = strings.TrimSpace(fields.CoverURL)
			if book.CoverURL == "" || book.CoverURL == covers.PlaceholderPath {
				book.CoverURL = covers.URLForISBN(isbn)
			}

			var record entities.ISBN
			err := tx.Where("book_id = ?", id).First(&record).Error
			switch {
			case err == nil:
				record.ISBN = isbn
				if err := tx.Save(&record).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				if err := tx.Create(&entities.ISBN{ISBN: isbn, BookID: id}).Error; err != nil {
					return err
				}
			default:
				return err
			}
		} else {
			book.CoverURL = covers.PlaceholderPath
			if err := tx.Where("book_id = ?", id).Delete(&entities.ISBN{}).Error; err != nil {
				return err
			}
		}

		return tx.Save(&book).Error
	})
}

// DeleteBook removes a book and its ISBN row(s) in one transaction. The
// manual cascade runs ISBN-first so a failure never orphans an isbns row.
func (r *Repository) DeleteBook(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.ISBN{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
}

func newBook(fields BookFields) *entities.Book {
	return &entities.Book{
		Title:       fields.Title,
		Author:      fields.Author,
		PublishDate: fields.PublishDate,
		CoverURL:    covers.OrPlaceholder(fields.CoverURL),
		Notes:       fields.Notes,
	}
}
