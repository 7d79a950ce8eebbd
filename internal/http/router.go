package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/covers"
)

// RouterConfig carries all controller dependencies. Using a config struct
// keeps NewRouter's signature stable and makes the router easy to build in
// tests with fakes.
type RouterConfig struct {
	LookupStore   LookupStore
	BookStore     BookManagerStore
	Metadata      MetadataProvider
	Health        Pinger
	TemplatesPath string
	StaticPath    string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Display-time fallback: templates never render an empty cover URL.
	funcMap := template.FuncMap{
		"coverOrPlaceholder": covers.OrPlaceholder,
	}

	tmpl := template.Must(template.New("").Funcs(funcMap).ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	router.Static("/static", cfg.StaticPath)

	lookupController := NewLookupController(cfg.LookupStore, cfg.Metadata)
	booksController := NewBooksController(cfg.BookStore)
	health := NewHealthController(cfg.Health, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Lookup routes
	router.GET("/", lookupController.IndexPage)
	router.GET("/book/:isbn", lookupController.BookByISBN)

	// Book list routes
	router.GET("/books", booksController.ListBooks)
	router.POST("/books", booksController.CreateBook)
	router.GET("/books/new", booksController.NewBookPage)
	router.GET("/books/:id/edit", booksController.EditBookPage)
	router.POST("/books/:id/edit", booksController.UpdateBook)
	router.POST("/books/:id/delete", booksController.DeleteBook)

	return router
}
