package database

import (
	"fmt"

	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models.
// Tables, indexes, join tables and foreign key constraints are derived
// from the struct definitions in the domain package.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Project{},
		&domain.Team{},
		&domain.Task{},
		&domain.Tag{},
		&domain.Comment{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
