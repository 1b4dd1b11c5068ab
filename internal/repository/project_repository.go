package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// visibleProjects filters projects to those the user owns or is a member of
const visibleProjects = "projects.owner_id = ? OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = projects.id AND pm.user_id = ?)"

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)
	FindVisibleByID(ctx context.Context, id, userID uuid.UUID) (*domain.Project, error)
	FindAllVisible(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	IsOwnerOrMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	CountVisible(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	ClearMembers(ctx context.Context, project *domain.Project) error
}

// projectRepositoryImpl is the GORM implementation of ProjectRepository
type projectRepositoryImpl struct {
	db *gorm.DB
}

// NewProjectRepository creates a new instance of ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

// Create creates a new project together with its member associations
func (r *projectRepositoryImpl) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindByID finds a project by ID without a visibility check
func (r *projectRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByIDAndOwner finds a project only if ownerID owns it. A miss is
// indistinguishable from a nonexistent project.
func (r *projectRepositoryImpl) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindVisibleByID finds a project the user owns or is a member of, with
// teams (members, tasks), members and owner populated
func (r *projectRepositoryImpl) FindVisibleByID(ctx context.Context, id, userID uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Members").
		Preload("Teams.Members").
		Preload("Teams.Tasks").
		Where("projects.id = ?", id).
		Where(visibleProjects, userID, userID).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAllVisible returns all projects the user owns or is a member of
func (r *projectRepositoryImpl) FindAllVisible(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	var projects []*domain.Project
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Members").
		Preload("Teams.Members").
		Where(visibleProjects, userID, userID).
		Order("projects.created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// IsOwnerOrMember reports whether the user can see the project
func (r *projectRepositoryImpl) IsOwnerOrMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("projects.id = ?", projectID).
		Where(visibleProjects, userID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountVisible counts the projects the user owns or is a member of
func (r *projectRepositoryImpl) CountVisible(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where(visibleProjects, userID, userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves a project
func (r *projectRepositoryImpl) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project row. Cascading of teams, tasks and member
// associations is orchestrated by the service inside a transaction.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id).Error
}

// ClearMembers removes all member associations from a project
func (r *projectRepositoryImpl) ClearMembers(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Model(project).Association("Members").Clear()
}
