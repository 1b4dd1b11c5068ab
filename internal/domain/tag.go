package domain

// Tag represents a global label attachable to any task.
// Names are not unique; tags are never scoped to a project.
type Tag struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;index:idx_tags_name" json:"name"`
	Color       string `gorm:"type:varchar(50)" json:"color"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
