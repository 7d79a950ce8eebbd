package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/openshelf/internal/config"
	"github.com/openshelf/openshelf/internal/database"
	"github.com/openshelf/openshelf/internal/database/books"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/metadata"
)

type fakeMetadataProvider struct {
	metadata *metadata.BookMetadata
	err      error
	calls    int
}

func (f *fakeMetadataProvider) FetchByISBN(ctx context.Context, isbn string) (*metadata.BookMetadata, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.metadata, nil
}

func setupTestRouter(t *testing.T, provider MetadataProvider) (*database.Database, *books.Repository, *gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(config.Database{Path: dbPath})
	require.NoError(t, err)

	repo := books.NewRepository(db.DB)

	router := NewRouter(RouterConfig{
		LookupStore:   repo,
		BookStore:     repo,
		Metadata:      provider,
		Health:        db,
		TemplatesPath: "../../templates",
		StaticPath:    "../../static",
		Version:       "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, repo, router, cleanup
}

func TestLookupController_IndexPage(t *testing.T) {
	_, _, router, cleanup := setupTestRouter(t, &fakeMetadataProvider{})
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Look up a book by ISBN")
}

func TestLookupController_BookByISBN(t *testing.T) {
	t.Run("new ISBN creates one book and one ISBN row and renders metadata", func(t *testing.T) {
		provider := &fakeMetadataProvider{
			metadata: &metadata.BookMetadata{
				Title:       "Matilda",
				Author:      "Roald Dahl",
				PublishDate: "October 1, 1988",
			},
		}
		db, repo, router, cleanup := setupTestRouter(t, provider)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/9780140328721", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Matilda")
		assert.Contains(t, w.Body.String(), "Roald Dahl")
		assert.Equal(t, 1, provider.calls)

		var bookCount, isbnCount int64
		require.NoError(t, db.DB.Model(&entities.Book{}).Count(&bookCount).Error)
		require.NoError(t, db.DB.Model(&entities.ISBN{}).Count(&isbnCount).Error)
		assert.Equal(t, int64(1), bookCount)
		assert.Equal(t, int64(1), isbnCount)

		stored, err := repo.FindByISBN("9780140328721")
		require.NoError(t, err)
		assert.Equal(t, "Matilda", stored.Title)
		assert.Equal(t, "Roald Dahl", stored.Author)
		assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780140328721-L.jpg", stored.CoverURL)
	})

	t.Run("stored ISBN renders without an outbound call", func(t *testing.T) {
		provider := &fakeMetadataProvider{
			metadata: &metadata.BookMetadata{Title: "Matilda", Author: "Roald Dahl"},
		}
		db, _, router, cleanup := setupTestRouter(t, provider)
		defer cleanup()

		first := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/9780140328721", nil)
		router.ServeHTTP(first, req)
		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, 1, provider.calls)

		second := httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/book/9780140328721", nil)
		router.ServeHTTP(second, req)

		assert.Equal(t, http.StatusOK, second.Code)
		assert.Contains(t, second.Body.String(), "Matilda")
		assert.Equal(t, 1, provider.calls, "stored lookup must not call the catalog")

		// Idempotence: the repeat lookup must not create a second row.
		var bookCount int64
		require.NoError(t, db.DB.Model(&entities.Book{}).Count(&bookCount).Error)
		assert.Equal(t, int64(1), bookCount)
	})

	t.Run("hyphenated ISBN hits the same stored row", func(t *testing.T) {
		provider := &fakeMetadataProvider{
			metadata: &metadata.BookMetadata{Title: "Matilda", Author: "Roald Dahl"},
		}
		_, _, router, cleanup := setupTestRouter(t, provider)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/9780140328721", nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/book/978-0-14-032872-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("catalog miss surfaces as generic 500", func(t *testing.T) {
		provider := &fakeMetadataProvider{err: metadata.ErrNotFound}
		_, _, router, cleanup := setupTestRouter(t, provider)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/9780140328721", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error fetching book details")
	})

	t.Run("upstream failure surfaces as generic 500", func(t *testing.T) {
		provider := &fakeMetadataProvider{err: errors.New("connection refused")}
		db, _, router, cleanup := setupTestRouter(t, provider)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/9780140328721", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Error fetching book details")

		var bookCount int64
		require.NoError(t, db.DB.Model(&entities.Book{}).Count(&bookCount).Error)
		assert.Equal(t, int64(0), bookCount, "failed lookups must not persist rows")
	})

	t.Run("invalid ISBN responds 400", func(t *testing.T) {
		provider := &fakeMetadataProvider{}
		_, _, router, cleanup := setupTestRouter(t, provider)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/book/notanisbn", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, provider.calls)
	})
}
