package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/metrics"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// ProjectService defines the interface for project business logic
type ProjectService interface {
	CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjects(ctx context.Context) ([]*dto.ProjectResponse, error)
	GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, projectID uuid.UUID) error
}

// projectServiceImpl is the implementation of ProjectService
type projectServiceImpl struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	txManager   repository.TxManager
	cache       *DashboardCache
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	txManager repository.TxManager,
	cache *DashboardCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		cache:       cache,
		metrics:     m,
		logger:      logger,
	}
}

// validateProjectDates rejects an end date before the start date
func validateProjectDates(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return response.NewValidationError("End date must not be before start date", "")
	}
	return nil
}

// CreateProject creates a project together with its default team in a
// single transaction. The requester becomes the owner and is always
// included in the member set; the default team mirrors that set with the
// requester as lead.
func (s *projectServiceImpl) CreateProject(ctx context.Context, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := validateProjectDates(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	memberIDs := dedupeIDs(req.Members)
	if !containsID(memberIDs, userID) {
		memberIDs = append(memberIDs, userID)
	}
	members, err := s.userRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve members", err.Error())
	}
	if len(members) != len(memberIDs) {
		return nil, response.NewValidationError("One or more member ids are unknown", "")
	}

	project := &domain.Project{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Status:      domain.ProjectStatusActive,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Members:     members,
	}

	err = s.txManager.InTx(ctx, func(repos *repository.Repositories) error {
		if err := repos.Projects.Create(ctx, project); err != nil {
			return err
		}
		team := &domain.Team{
			ProjectID: project.ID,
			LeadID:    userID,
			Name:      fmt.Sprintf("%s's Team", project.Name),
			Members:   members,
		}
		return repos.Teams.Create(ctx, team)
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create project", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementProjectCreated()
		s.metrics.IncrementTeamCreated()
	}
	s.cache.Invalidate(ctx, userID)
	s.logger.Info("Project created",
		zap.String("project_id", project.ID.String()),
		zap.String("owner_id", userID.String()),
		zap.Int("members", len(members)),
	)

	created, err := s.projectRepo.FindVisibleByID(ctx, project.ID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created project", err.Error())
	}
	return toProjectResponse(created), nil
}

// GetProjects returns the projects the requester owns or belongs to
func (s *projectServiceImpl) GetProjects(ctx context.Context) ([]*dto.ProjectResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.FindAllVisible(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list projects", err.Error())
	}
	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, project := range projects {
		responses = append(responses, toProjectResponse(project))
	}
	return responses, nil
}

// GetProject returns a project the requester owns or belongs to, with
// members and teams populated
func (s *projectServiceImpl) GetProject(ctx context.Context, projectID uuid.UUID) (*dto.ProjectResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindVisibleByID(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}
	return toProjectResponse(project), nil
}

// UpdateProject updates a project. Only the owner may update; a project
// owned by someone else reads as not found.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, projectID uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindByIDAndOwner(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch project", err.Error())
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		status := domain.ProjectStatus(*req.Status)
		if !domain.ValidProjectStatus(status) {
			return nil, response.NewValidationError("Unknown project status", *req.Status)
		}
		project.Status = status
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if err := validateProjectDates(project.StartDate, project.EndDate); err != nil {
		return nil, err
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update project", err.Error())
	}

	updated, err := s.projectRepo.FindVisibleByID(ctx, projectID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load updated project", err.Error())
	}
	return toProjectResponse(updated), nil
}

// DeleteProject deletes a project and cascades its tasks, teams and
// member associations in a single transaction. Owner only.
func (s *projectServiceImpl) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	err = s.txManager.InTx(ctx, func(repos *repository.Repositories) error {
		project, err := repos.Projects.FindByIDAndOwner(ctx, projectID, userID)
		if err != nil {
			return err
		}
		if err := repos.Tasks.DeleteByProjectID(ctx, projectID); err != nil {
			return err
		}
		if err := repos.Teams.DeleteByProjectID(ctx, projectID); err != nil {
			return err
		}
		if err := repos.Projects.ClearMembers(ctx, project); err != nil {
			return err
		}
		return repos.Projects.Delete(ctx, projectID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete project", err.Error())
	}

	s.cache.Invalidate(ctx, userID)
	s.logger.Info("Project deleted", zap.String("project_id", projectID.String()))
	return nil
}
