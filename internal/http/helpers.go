package http

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// serverError logs the underlying error and sends a plain-text 500 with a
// generic message. The actual error is never exposed to the client.
func serverError(c *gin.Context, err error, context, message string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.String(http.StatusInternalServerError, message)
}

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 and returns false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid book ID")
		return 0, false
	}
	return uint(id), true
}

// trimmedForm returns a POSTed form value with surrounding whitespace removed.
func trimmedForm(c *gin.Context, field string) string {
	return strings.TrimSpace(c.PostForm(field))
}
