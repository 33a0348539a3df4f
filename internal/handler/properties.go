package handler

import (
	"net/http"

	"estates/internal/model"
	"estates/internal/query"
	"estates/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles catalog-related HTTP requests
type PropertyHandler struct {
	properties *service.PropertyService
	maxLimit   int
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(properties *service.PropertyService, maxLimit int) *PropertyHandler {
	return &PropertyHandler{
		properties: properties,
		maxLimit:   maxLimit,
	}
}

// List handles GET /api/v1/properties. Filters arrive as query
// parameters; malformed numeric values are ignored rather than
// rejected, so the endpoint stays tolerant of hand-edited URLs.
func (h *PropertyHandler) List(c *gin.Context) {
	criteria := query.ParseValues(c.Request.URL.Query())
	// No limit means all matches; only oversized limits are capped.
	if h.maxLimit > 0 && criteria.Limit > h.maxLimit {
		criteria.Limit = h.maxLimit
	}

	properties, err := h.properties.List(c.Request.Context(), criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// Get handles GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	p, err := h.properties.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Similar handles GET /api/v1/properties/:id/similar
func (h *PropertyHandler) Similar(c *gin.Context) {
	properties, err := h.properties.Similar(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// Trending handles GET /api/v1/projects/trending
func (h *PropertyHandler) Trending(c *gin.Context) {
	projects, err := h.properties.Trending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Create handles POST /api/v1/admin/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var p model.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.properties.Create(c.Request.Context(), &p, actor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/v1/admin/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	var p model.Property
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	p.ID = c.Param("id")
	if err := h.properties.Update(c.Request.Context(), &p, actor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/v1/admin/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.properties.Delete(c.Request.Context(), c.Param("id"), actor(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// actor identifies the dashboard user for the activity log. The
// gateway in front of this service sets the header after verifying
// the session token.
func actor(c *gin.Context) string {
	if a := c.GetHeader("X-Actor"); a != "" {
		return a
	}
	return "admin"
}
