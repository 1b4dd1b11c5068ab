package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow status of a task.
// No transition graph is enforced; any authorized caller may set any value.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusReview     TaskStatus = "REVIEW"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// TaskPriority represents the priority level of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// Task represents a unit of work within a project, carried out by a team
type Task struct {
	BaseModel
	ProjectID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_project_id" json:"project_id"`
	TeamID      uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_team_id" json:"team_id"`
	CreatedByID uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_created_by_id" json:"created_by_id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(50);not null;default:'PENDING';index:idx_tasks_status" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(50);not null;default:'MEDIUM';index:idx_tasks_priority" json:"priority"`
	StartDate   *time.Time   `gorm:"type:timestamp" json:"start_date,omitempty"`
	Deadline    *time.Time   `gorm:"type:timestamp;index:idx_tasks_deadline" json:"deadline,omitempty"`
	CreatedBy   User         `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Assignees   []User       `gorm:"many2many:task_assignees" json:"assignees,omitempty"`
	Tags        []Tag        `gorm:"many2many:task_tags" json:"tags,omitempty"`
	Comments    []Comment    `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// ValidTaskStatus reports whether s is a known task status
func ValidTaskStatus(s TaskStatus) bool {
	_, ok := TaskStatusMeta[s]
	return ok
}

// ValidTaskPriority reports whether p is a known task priority
func ValidTaskPriority(p TaskPriority) bool {
	_, ok := TaskPriorityMeta[p]
	return ok
}
