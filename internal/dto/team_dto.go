package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTeamRequest represents the request to create a team.
// The requester must be owner or member of the parent project and
// becomes the team lead.
type CreateTeamRequest struct {
	Name        string      `json:"name" binding:"required,min=1,max=255" example:"Backend Crew"`
	Description string      `json:"description" binding:"max=2000"`
	ProjectID   uuid.UUID   `json:"projectId" binding:"required"`
	Members     []uuid.UUID `json:"members,omitempty" binding:"omitempty,dive,uuid"`
}

// UpdateTeamRequest represents the request to update a team (lead only).
// A non-nil Members slice replaces the full member set.
type UpdateTeamRequest struct {
	Name        *string      `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string      `json:"description" binding:"omitempty,max=2000"`
	Members     *[]uuid.UUID `json:"members,omitempty"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID          uuid.UUID      `json:"teamId"`
	ProjectID   uuid.UUID      `json:"projectId"`
	LeadID      uuid.UUID      `json:"leadId"`
	Name        string         `json:"name" example:"Backend Crew"`
	Description string         `json:"description,omitempty"`
	Members     []UserResponse `json:"members"`
	Tasks       []TaskResponse `json:"tasks,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
