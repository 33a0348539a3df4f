package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Property represents a catalog listing as shown on the public site.
// PriceValue/SqftValue are the numeric fields used by filtering and
// sorting; PriceLabel/SqftLabel are display strings and are never parsed.
type Property struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Location    string    `json:"location" db:"location"`
	Type        string    `json:"type" db:"type"`
	Status      string    `json:"status" db:"status"`
	PriceValue  float64   `json:"priceValue" db:"price_value"`
	PriceLabel  string    `json:"priceLabel" db:"price_label"`
	Beds        int       `json:"beds" db:"beds"`
	Baths       int       `json:"baths" db:"baths"`
	SqftValue   float64   `json:"sqftValue" db:"sqft_value"`
	SqftLabel   string    `json:"sqftLabel" db:"sqft_label"`
	IsFeatured  bool      `json:"isFeatured" db:"is_featured"`
	CoverImage  string    `json:"coverImage,omitempty" db:"cover_image"`
	Gallery     JSONArray `json:"gallery,omitempty" db:"gallery"`
	Description string    `json:"description,omitempty" db:"description"`
	Features    JSONArray `json:"features,omitempty" db:"features"`
	Seq         int64     `json:"-" db:"seq"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}

// JSONMap represents a JSON object field
type JSONMap map[string]interface{}

// Value implements driver.Valuer interface
func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
