package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to create a comment on a task
type CreateCommentRequest struct {
	TaskID  uuid.UUID `json:"taskId" binding:"required"`
	Content string    `json:"content" binding:"required,min=1,max=5000" example:"Looks good, shipping it."`
}

// UpdateCommentRequest represents the request to edit a comment (author only)
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID        uuid.UUID     `json:"commentId"`
	TaskID    uuid.UUID     `json:"taskId"`
	AuthorID  uuid.UUID     `json:"authorId"`
	Content   string        `json:"content"`
	Author    *UserResponse `json:"author,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
