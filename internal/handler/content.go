package handler

import (
	"net/http"

	"estates/internal/model"
	"estates/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler handles CMS content-block HTTP requests
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// Get handles GET /api/v1/content/:key
func (h *ContentHandler) Get(c *gin.Context) {
	block, err := h.content.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// Upsert handles PUT /api/v1/admin/content/:key
func (h *ContentHandler) Upsert(c *gin.Context) {
	var payload model.JSONMap
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	block, err := h.content.Upsert(c.Request.Context(), c.Param("key"), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}
