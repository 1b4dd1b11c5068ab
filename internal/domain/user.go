package domain

// User represents an authenticated account synced from the identity provider.
// Rows are upserted at authentication time and never deleted by this service.
type User struct {
	BaseModel
	Name       string `gorm:"type:varchar(255)" json:"name"`
	Email      string `gorm:"type:varchar(255);uniqueIndex:uq_users_email" json:"email"`
	Image      string `gorm:"type:text" json:"image"`
	Role       string `gorm:"type:varchar(100)" json:"role"`
	Department string `gorm:"type:varchar(100)" json:"department"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
