package handler

import (
	"net/http"

	"estates/internal/model"
	"estates/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles lead and contact-message HTTP requests
type LeadHandler struct {
	leads *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leads *service.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// CreateLead handles POST /api/v1/leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req model.LeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	lead, err := h.leads.CreateLead(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// ListLeads handles GET /api/v1/admin/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.leads.ListLeads(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

// UpdateLeadStatus handles PATCH /api/v1/admin/leads/:id/status
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := h.leads.UpdateLeadStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateMessage handles POST /api/v1/messages
func (h *LeadHandler) CreateMessage(c *gin.Context) {
	var req model.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	msg, err := h.leads.CreateContactMessage(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /api/v1/admin/messages
func (h *LeadHandler) ListMessages(c *gin.Context) {
	messages, err := h.leads.ListContactMessages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
