package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse represents a user in API responses
type UserResponse struct {
	ID         uuid.UUID `json:"userId" example:"b2c3d4e5-f6a7-8901-bcde-f12345678901"`
	Name       string    `json:"name" example:"Jordan Lee"`
	Email      string    `json:"email" example:"jordan@example.com"`
	Image      string    `json:"image,omitempty" example:"https://avatars.example.com/jordan.png"`
	Role       string    `json:"role,omitempty" example:"Engineer"`
	Department string    `json:"department,omitempty" example:"Platform"`
	CreatedAt  time.Time `json:"createdAt"`
}

// UpdateProfileRequest represents a self-service profile update.
// All fields are optional; only provided fields are changed.
type UpdateProfileRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255" example:"Jordan Lee"`
	Role       *string `json:"role" binding:"omitempty,max=100" example:"Staff Engineer"`
	Department *string `json:"department" binding:"omitempty,max=100" example:"Infrastructure"`
}
