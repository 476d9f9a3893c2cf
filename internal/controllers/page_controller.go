package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetdesk/internal/pages"
)

// ServePage returns a handler that writes the named static page as markdown.
func ServePage(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := pages.Markdown(name)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(body))
	}
}
