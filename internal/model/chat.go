package model

import "time"

// Chat message senders
const (
	SenderBot  = "bot"
	SenderUser = "user"
)

// ChatMessage is a single entry in a chat session's history. Bot replies
// may carry up to 3 attached properties and up to 4 suggested replies;
// RequestHandoff asks the UI to open the contact-capture dialog.
type ChatMessage struct {
	ID               string     `json:"id"`
	Text             string     `json:"text"`
	Sender           string     `json:"sender"`
	Timestamp        time.Time  `json:"timestamp"`
	Properties       []Property `json:"properties,omitempty"`
	SuggestedReplies []string   `json:"suggestedReplies,omitempty"`
	RequestHandoff   bool       `json:"requestHandoff,omitempty"`
}

// ChatRequest is the body of POST /api/v1/chat
type ChatRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}
