package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmarkd/bookmarkd/internal/bookmark"
	"github.com/bookmarkd/bookmarkd/internal/bookmark/service"
	"github.com/bookmarkd/bookmarkd/pkg/logger"
)

// RegisterBookmarkRoutes mounts the bookmark resource on the given group.
// Route mounting is the caller's concern; everything here is relative to
// the collection path.
func RegisterBookmarkRoutes(rg *gin.RouterGroup, svc service.Service) {
	rg.GET("", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		// empty collection is 200 with [], not an error
		c.JSON(http.StatusOK, list)
	})

	rg.POST("", func(c *gin.Context) {
		var req bookmark.CreateBookmarkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "request body must be valid JSON"}})
			return
		}
		created, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.Header("Location", c.Request.URL.Path+"/"+created.ID)
		c.JSON(http.StatusCreated, created)
	})

	rg.GET("/:id", func(c *gin.Context) {
		b, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	})

	rg.PATCH("/:id", func(c *gin.Context) {
		var req bookmark.UpdateBookmarkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "request body must be valid JSON"}})
			return
		}
		if err := svc.Update(c.Request.Context(), c.Param("id"), req); err != nil {
			writeError(c, err)
			return
		}
		// merged entity is not echoed; caller re-fetches
		c.Status(http.StatusNoContent)
	})

	rg.DELETE("/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// writeError maps service errors onto the uniform {"error":{"message":...}}
// body. Store failures are logged and surfaced as a generic 500, never
// retried here.
func writeError(c *gin.Context, err error) {
	var verr *bookmark.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": verr.Message}})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Bookmark does not exist"}})
		return
	}
	logger.Errorf("bookmark request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "unexpected error"}})
}
