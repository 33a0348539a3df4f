package handler

import (
	"net/http"

	"estates/internal/model"
	"estates/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles assistant-related HTTP requests
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type sessionRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// Open handles POST /api/v1/chat/open and returns the welcome message
func (h *ChatHandler) Open(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.chat.Open(req.SessionID))
}

// Message handles POST /api/v1/chat
func (h *ChatHandler) Message(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	reply := h.chat.Message(c.Request.Context(), req.SessionID, req.Text)
	c.JSON(http.StatusOK, reply)
}

// ResolveHandoff handles POST /api/v1/chat/handoff/resolve. The UI
// calls it after the contact-capture dialog was submitted or
// cancelled; the lead itself goes through POST /api/v1/leads.
func (h *ChatHandler) ResolveHandoff(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	h.chat.ResolveHandoff(req.SessionID)
	c.Status(http.StatusNoContent)
}

// History handles GET /api/v1/chat/:sessionId/history
func (h *ChatHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.chat.History(c.Param("sessionId"))})
}
