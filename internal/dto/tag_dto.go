package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTagRequest represents the request to create a tag.
// Tag names are not unique; duplicates are allowed.
type CreateTagRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100" example:"backend"`
	Color       string `json:"color" binding:"max=50" example:"#22c55e"`
	Description string `json:"description" binding:"max=500"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID          uuid.UUID `json:"tagId"`
	Name        string    `json:"name" example:"backend"`
	Color       string    `json:"color,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
