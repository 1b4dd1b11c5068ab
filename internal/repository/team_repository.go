package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// visibleTeams filters teams to those the user leads or is a member of
const visibleTeams = "teams.lead_id = ? OR EXISTS (SELECT 1 FROM team_members tm WHERE tm.team_id = teams.id AND tm.user_id = ?)"

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	FindByIDAndLead(ctx context.Context, id, leadID uuid.UUID) (*domain.Team, error)
	FindVisibleByID(ctx context.Context, id, userID uuid.UUID) (*domain.Team, error)
	FindAllVisible(ctx context.Context, userID uuid.UUID) ([]*domain.Team, error)
	FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	ReplaceMembers(ctx context.Context, team *domain.Team, members []domain.User) error
	DeleteByProjectID(ctx context.Context, projectID uuid.UUID) error
}

// teamRepositoryImpl is the GORM implementation of TeamRepository
type teamRepositoryImpl struct {
	db *gorm.DB
}

// NewTeamRepository creates a new instance of TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepositoryImpl{db: db}
}

// Create creates a new team together with its member associations
func (r *teamRepositoryImpl) Create(ctx context.Context, team *domain.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// FindByID finds a team by ID without a visibility check
func (r *teamRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByIDAndLead finds a team only if leadID leads it. A miss is
// indistinguishable from a nonexistent team.
func (r *teamRepositoryImpl) FindByIDAndLead(ctx context.Context, id, leadID uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	if err := r.db.WithContext(ctx).
		Where("id = ? AND lead_id = ?", id, leadID).
		First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// FindVisibleByID finds a team the user leads or is a member of, with
// members populated
func (r *teamRepositoryImpl) FindVisibleByID(ctx context.Context, id, userID uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Preload("Tasks").
		Where("teams.id = ?", id).
		Where(visibleTeams, userID, userID).
		First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// FindAllVisible returns all teams the user leads or is a member of
func (r *teamRepositoryImpl) FindAllVisible(ctx context.Context, userID uuid.UUID) ([]*domain.Team, error) {
	var teams []*domain.Team
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Where(visibleTeams, userID, userID).
		Order("teams.created_at DESC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// FindByProjectID returns all teams of a project with members populated.
// Used for the exact-set matching during task creation.
func (r *teamRepositoryImpl) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Team, error) {
	var teams []*domain.Team
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Where("project_id = ?", projectID).
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Update saves a team
func (r *teamRepositoryImpl) Update(ctx context.Context, team *domain.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// ReplaceMembers replaces the team's full member set
func (r *teamRepositoryImpl) ReplaceMembers(ctx context.Context, team *domain.Team, members []domain.User) error {
	return r.db.WithContext(ctx).Model(team).Association("Members").Replace(members)
}

// DeleteByProjectID removes all teams of a project
func (r *teamRepositoryImpl) DeleteByProjectID(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&domain.Team{}).Error
}
