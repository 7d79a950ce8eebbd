package entities

import (
	"time"
)

type Book struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"index;size:512" json:"title"`
	Author      string    `gorm:"size:256" json:"author"`
	PublishDate string    `gorm:"size:64" json:"publish_date,omitempty"` // free-form, as OpenLibrary reports it
	CoverURL    string    `gorm:"size:2048" json:"cover_url,omitempty"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	ISBN        *ISBN     `gorm:"foreignKey:BookID" json:"isbn,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ISBN links a book to its external catalog key. A book has at most one
// ISBN row; the unique index on BookID enforces it.
type ISBN struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	ISBN   string `gorm:"index;size:20" json:"isbn"`
	BookID uint   `gorm:"uniqueIndex" json:"book_id"`
}

func (Book) TableName() string {
	return "books"
}

func (ISBN) TableName() string {
	return "isbns"
}

// ISBNValue returns the book's ISBN string, or "" when none is linked.
func (b *Book) ISBNValue() string {
	if b.ISBN == nil {
		return ""
	}
	return b.ISBN.ISBN
}
