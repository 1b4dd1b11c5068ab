package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/metrics"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// TeamService defines the interface for team business logic
type TeamService interface {
	CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error)
	GetTeams(ctx context.Context) ([]*dto.TeamResponse, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (*dto.TeamResponse, error)
	UpdateTeam(ctx context.Context, teamID uuid.UUID, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error)
}

// teamServiceImpl is the implementation of TeamService
type teamServiceImpl struct {
	teamRepo    repository.TeamRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTeamService creates a new instance of TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) TeamService {
	return &teamServiceImpl{
		teamRepo:    teamRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		metrics:     m,
		logger:      logger,
	}
}

// resolveMembers loads the users for the given ids, failing validation
// when any id is unknown
func (s *teamServiceImpl) resolveMembers(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	ids = dedupeIDs(ids)
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve members", err.Error())
	}
	if len(users) != len(ids) {
		return nil, response.NewValidationError("One or more member ids are unknown", "")
	}
	return users, nil
}

// CreateTeam creates a team inside a project. The requester must be able
// to see the project and becomes the team lead.
func (s *teamServiceImpl) CreateTeam(ctx context.Context, req *dto.CreateTeamRequest) (*dto.TeamResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	visible, err := s.projectRepo.IsOwnerOrMember(ctx, req.ProjectID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify project", err.Error())
	}
	if !visible {
		return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
	}

	members, err := s.resolveMembers(ctx, req.Members)
	if err != nil {
		return nil, err
	}

	team := &domain.Team{
		ProjectID:   req.ProjectID,
		LeadID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Members:     members,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create team", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTeamCreated()
	}
	s.logger.Info("Team created",
		zap.String("team_id", team.ID.String()),
		zap.String("project_id", req.ProjectID.String()),
	)

	created, err := s.teamRepo.FindVisibleByID(ctx, team.ID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created team", err.Error())
	}
	return toTeamResponse(created), nil
}

// GetTeams returns the teams the requester leads or belongs to
func (s *teamServiceImpl) GetTeams(ctx context.Context) ([]*dto.TeamResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.FindAllVisible(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list teams", err.Error())
	}
	responses := make([]*dto.TeamResponse, 0, len(teams))
	for _, team := range teams {
		responses = append(responses, toTeamResponse(team))
	}
	return responses, nil
}

// GetTeam returns a team the requester leads or belongs to
func (s *teamServiceImpl) GetTeam(ctx context.Context, teamID uuid.UUID) (*dto.TeamResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindVisibleByID(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Team not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch team", err.Error())
	}
	return toTeamResponse(team), nil
}

// UpdateTeam updates a team. Only the lead may update; a team led by
// someone else reads as not found. A non-nil member list replaces the
// full member set.
func (s *teamServiceImpl) UpdateTeam(ctx context.Context, teamID uuid.UUID, req *dto.UpdateTeamRequest) (*dto.TeamResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindByIDAndLead(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Team not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch team", err.Error())
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update team", err.Error())
	}

	if req.Members != nil {
		members, err := s.resolveMembers(ctx, *req.Members)
		if err != nil {
			return nil, err
		}
		if err := s.teamRepo.ReplaceMembers(ctx, team, members); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to replace team members", err.Error())
		}
	}

	updated, err := s.teamRepo.FindVisibleByID(ctx, teamID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load updated team", err.Error())
	}
	return toTeamResponse(updated), nil
}
