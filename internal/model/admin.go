package model

import "time"

// User is a dashboard account record. Credential handling and token
// issuance live outside this service.
type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      string    `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// UserRequest is the body of POST /api/v1/admin/users
type UserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// ActivityEntry records a dashboard mutation for the activity log.
type ActivityEntry struct {
	ID        string    `json:"id" db:"id"`
	Actor     string    `json:"actor" db:"actor"`
	Action    string    `json:"action" db:"action"`
	Entity    string    `json:"entity" db:"entity"`
	EntityID  string    `json:"entityId" db:"entity_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ContentBlock is a keyed CMS fragment rendered by the public site.
type ContentBlock struct {
	Key       string    `json:"key" db:"key"`
	Payload   JSONMap   `json:"payload" db:"payload"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// AnalyticsSummary aggregates dashboard counters.
type AnalyticsSummary struct {
	TotalProperties int            `json:"totalProperties"`
	FeaturedCount   int            `json:"featuredCount"`
	ByStatus        map[string]int `json:"byStatus"`
	ByType          map[string]int `json:"byType"`
	LeadsByStatus   map[string]int `json:"leadsByStatus"`
	TotalLeads      int            `json:"totalLeads"`
	TotalMessages   int            `json:"totalMessages"`
}
