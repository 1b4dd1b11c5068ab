package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the lifecycle status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusOnHold    ProjectStatus = "ON_HOLD"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	ProjectStatusArchived  ProjectStatus = "ARCHIVED"
)

// Project represents a project owned by a user.
// The owner is always included in Members.
type Project struct {
	BaseModel
	OwnerID     uuid.UUID     `gorm:"type:uuid;not null;index:idx_projects_owner_id" json:"owner_id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Status      ProjectStatus `gorm:"type:varchar(50);not null;default:'ACTIVE';index:idx_projects_status" json:"status"`
	StartDate   time.Time     `gorm:"type:timestamp;not null" json:"start_date"`
	EndDate     *time.Time    `gorm:"type:timestamp" json:"end_date,omitempty"`
	Owner       User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Members     []User        `gorm:"many2many:project_members" json:"members,omitempty"`
	Teams       []Team        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"teams,omitempty"`
	Tasks       []Task        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
