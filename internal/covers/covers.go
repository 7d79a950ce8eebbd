// Package covers builds cover image URLs for books.
//
// Covers are never fetched server-side; pages reference the OpenLibrary
// covers host directly and fall back to a bundled placeholder image when
// no cover is known.
package covers

import (
	"fmt"
	"strings"
)

// PlaceholderPath is the static asset served when a book has no cover.
const PlaceholderPath = "/static/images/cover-placeholder.svg"

// URLForISBN maps an ISBN to the OpenLibrary large cover image URL.
// Returns "" for a blank ISBN.
func URLForISBN(isbn string) string {
	isbn = strings.TrimSpace(isbn)
	if isbn == "" {
		return ""
	}
	return fmt.Sprintf("https://covers.openlibrary.org/b/isbn/%s-L.jpg", isbn)
}

// OrPlaceholder substitutes the placeholder asset for an empty cover URL.
func OrPlaceholder(coverURL string) string {
	if strings.TrimSpace(coverURL) == "" {
		return PlaceholderPath
	}
	return coverURL
}
