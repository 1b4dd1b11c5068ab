package domain

import "github.com/google/uuid"

// Team represents a group of users working on tasks within a project.
// Teams are created explicitly or implicitly during task creation when no
// existing team matches the selected assignee set. The lead is the creator.
type Team struct {
	BaseModel
	ProjectID   uuid.UUID `gorm:"type:uuid;not null;index:idx_teams_project_id" json:"project_id"`
	LeadID      uuid.UUID `gorm:"type:uuid;not null;index:idx_teams_lead_id" json:"lead_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Lead        User      `gorm:"foreignKey:LeadID" json:"lead,omitempty"`
	Members     []User    `gorm:"many2many:team_members" json:"members,omitempty"`
	Tasks       []Task    `gorm:"foreignKey:TeamID" json:"tasks,omitempty"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "teams"
}
