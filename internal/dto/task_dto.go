package dto

import (
	"time"

	"github.com/google/uuid"
)

// TagInput references an existing tag by id or asks for a new tag to be
// created from its label and color.
type TagInput struct {
	ID    *uuid.UUID `json:"id,omitempty"`
	Label string     `json:"label" binding:"required,min=1,max=100" example:"backend"`
	Color string     `json:"color" binding:"max=50" example:"#22c55e"`
}

// CreateTaskRequest represents the request to create a task.
// When teamId is omitted the owning team is resolved from the assignee
// set: an existing project team with exactly the same members is reused,
// otherwise a new team is created. Team, tags and task are created in a
// single transaction.
type CreateTaskRequest struct {
	Title       string      `json:"title" binding:"required,min=1,max=255" example:"Design the migration plan"`
	Description string      `json:"description" binding:"max=5000"`
	ProjectID   uuid.UUID   `json:"projectId" binding:"required"`
	TeamID      *uuid.UUID  `json:"teamId,omitempty"`
	Priority    *string     `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	StartDate   *time.Time  `json:"startDate,omitempty"`
	Deadline    *time.Time  `json:"deadline,omitempty"`
	Assignees   []uuid.UUID `json:"assignees,omitempty" binding:"omitempty,dive,uuid"`
	Tags        []TagInput  `json:"tags,omitempty" binding:"omitempty,dive"`
}

// UpdateTaskRequest represents a partial task update (creator or
// assignee only). Non-nil Assignees/Tags replace the full set.
type UpdateTaskRequest struct {
	Title       *string      `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string      `json:"description" binding:"omitempty,max=5000"`
	Status      *string      `json:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS REVIEW COMPLETED"`
	Priority    *string      `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	StartDate   *time.Time   `json:"startDate,omitempty"`
	Deadline    *time.Time   `json:"deadline,omitempty"`
	Assignees   *[]uuid.UUID `json:"assignees,omitempty"`
	Tags        *[]TagInput  `json:"tags,omitempty"`
}

// TaskFilters narrows task listing
type TaskFilters struct {
	ProjectID *uuid.UUID
	TeamID    *uuid.UUID
	Status    *string
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          uuid.UUID         `json:"taskId"`
	ProjectID   uuid.UUID         `json:"projectId"`
	TeamID      uuid.UUID         `json:"teamId"`
	CreatedByID uuid.UUID         `json:"createdById"`
	Title       string            `json:"title" example:"Design the migration plan"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status" example:"PENDING"`
	Priority    string            `json:"priority" example:"MEDIUM"`
	StartDate   *time.Time        `json:"startDate,omitempty"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	Assignees   []UserResponse    `json:"assignees"`
	Tags        []TagResponse     `json:"tags"`
	Comments    []CommentResponse `json:"comments,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
