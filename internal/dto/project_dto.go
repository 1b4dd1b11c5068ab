package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateProjectRequest represents the request to create a new project
// @Description The requester becomes the owner and is always included in
// @Description members. A default team with the same member set is created
// @Description in the same transaction.
type CreateProjectRequest struct {
	Name        string      `json:"name" binding:"required,min=1,max=255" example:"Q1 2026 Platform Rework"`
	Description string      `json:"description" binding:"max=2000" example:"Replatforming effort for Q1"`
	StartDate   time.Time   `json:"startDate" binding:"required" example:"2026-01-05T00:00:00Z"`
	EndDate     *time.Time  `json:"endDate,omitempty" example:"2026-03-31T23:59:59Z"`
	Members     []uuid.UUID `json:"members,omitempty" binding:"omitempty,dive,uuid"`
}

// UpdateProjectRequest represents the request to update a project.
// All fields are optional; only provided fields are changed.
type UpdateProjectRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Status      *string    `json:"status" binding:"omitempty,oneof=ACTIVE ON_HOLD COMPLETED ARCHIVED"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// ProjectResponse represents a project in API responses
type ProjectResponse struct {
	ID          uuid.UUID      `json:"projectId" example:"539167fb-b599-41ba-9ead-344a6d0b3a2f"`
	OwnerID     uuid.UUID      `json:"ownerId"`
	Name        string         `json:"name" example:"Q1 2026 Platform Rework"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status" example:"ACTIVE"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     *time.Time     `json:"endDate,omitempty"`
	Owner       *UserResponse  `json:"owner,omitempty"`
	Members     []UserResponse `json:"members"`
	Teams       []TeamResponse `json:"teams,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
