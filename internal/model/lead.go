package model

import "time"

// Lead status lifecycle
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusClosed    = "closed"
)

// Lead is a captured sales contact (page forms, chatbot handoff).
type Lead struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone,omitempty" db:"phone"`
	Source     string    `json:"source" db:"source"`
	PropertyID *string   `json:"propertyId,omitempty" db:"property_id"`
	Message    string    `json:"message,omitempty" db:"message"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// LeadRequest is the body of POST /api/v1/leads
type LeadRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Source     string  `json:"source"`
	PropertyID *string `json:"propertyId"`
	Message    string  `json:"message"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject,omitempty" db:"subject"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ContactMessageRequest is the body of POST /api/v1/messages
type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}
