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

// TaskService defines the interface for task business logic
type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTasks(ctx context.Context, filters *dto.TaskFilters) ([]*dto.TaskResponse, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	txManager   repository.TxManager
	cache       *DashboardCache
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	txManager repository.TxManager,
	cache *DashboardCache,
	m *metrics.Metrics,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		cache:       cache,
		metrics:     m,
		logger:      logger,
	}
}

// validateTaskDates rejects a deadline before the start date
func validateTaskDates(start, deadline *time.Time) error {
	if start != nil && deadline != nil && deadline.Before(*start) {
		return response.NewValidationError("Deadline must not be before start date", "")
	}
	return nil
}

// resolveAssignees loads the users for the assignee ids. An empty list
// defaults to the requester, so every task team has at least one member.
func (s *taskServiceImpl) resolveAssignees(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]uuid.UUID, []domain.User, error) {
	ids = dedupeIDs(ids)
	if len(ids) == 0 {
		ids = []uuid.UUID{userID}
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve assignees", err.Error())
	}
	if len(users) != len(ids) {
		return nil, nil, response.NewValidationError("One or more assignee ids are unknown", "")
	}
	return ids, users, nil
}

// teamMatchesAssignees reports whether the team's member set equals the
// assignee set exactly
func teamMatchesAssignees(team *domain.Team, assigneeIDs []uuid.UUID) bool {
	if len(team.Members) != len(assigneeIDs) {
		return false
	}
	for _, member := range team.Members {
		if !containsID(assigneeIDs, member.ID) {
			return false
		}
	}
	return true
}

// resolveTeam picks the owning team for a new task. An explicit teamId
// must belong to the project; otherwise the project's teams are searched
// for an exact assignee-set match, and a fresh team is created when none
// matches. Returns the team and whether an existing one was reused.
func resolveTeam(
	ctx context.Context,
	repos *repository.Repositories,
	project *domain.Project,
	requestedTeamID *uuid.UUID,
	userID uuid.UUID,
	assigneeIDs []uuid.UUID,
	assignees []domain.User,
) (*domain.Team, bool, error) {
	if requestedTeamID != nil {
		team, err := repos.Teams.FindByID(ctx, *requestedTeamID)
		if err != nil || team.ProjectID != project.ID {
			return nil, false, response.NewAppError(response.ErrCodeNotFound, "Team not found", "")
		}
		return team, true, nil
	}

	teams, err := repos.Teams.FindByProjectID(ctx, project.ID)
	if err != nil {
		return nil, false, err
	}
	for _, team := range teams {
		if teamMatchesAssignees(team, assigneeIDs) {
			return team, true, nil
		}
	}

	team := &domain.Team{
		ProjectID: project.ID,
		LeadID:    userID,
		Name:      fmt.Sprintf("Task Team for %s", project.Name),
		Members:   assignees,
	}
	if err := repos.Teams.Create(ctx, team); err != nil {
		return nil, false, err
	}
	return team, false, nil
}

// resolveTags turns tag inputs into tag rows. Inputs with an id must
// reference existing tags; the rest are created from label and color.
// Returns the tags and how many were newly created.
func resolveTags(ctx context.Context, tagRepo repository.TagRepository, inputs []dto.TagInput) ([]domain.Tag, int, error) {
	if len(inputs) == 0 {
		return nil, 0, nil
	}

	var existingIDs []uuid.UUID
	for _, input := range inputs {
		if input.ID != nil {
			existingIDs = append(existingIDs, *input.ID)
		}
	}
	existingIDs = dedupeIDs(existingIDs)
	existing, err := tagRepo.FindByIDs(ctx, existingIDs)
	if err != nil {
		return nil, 0, err
	}
	if len(existing) != len(existingIDs) {
		return nil, 0, response.NewAppError(response.ErrCodeNotFound, "Tag not found", "")
	}

	tags := existing
	created := 0
	for _, input := range inputs {
		if input.ID != nil {
			continue
		}
		tag := domain.Tag{Name: input.Label, Color: input.Color}
		if err := tagRepo.Create(ctx, &tag); err != nil {
			return nil, 0, err
		}
		tags = append(tags, tag)
		created++
	}
	return tags, created, nil
}

// CreateTask creates a task. Team resolution, tag creation and the task
// row are committed in one transaction so a failure leaves no orphaned
// teams or tags behind.
func (s *taskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateTaskDates(req.StartDate, req.Deadline); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindVisibleByID(ctx, req.ProjectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Project not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify project", err.Error())
	}

	assigneeIDs, assignees, err := s.resolveAssignees(ctx, req.Assignees, userID)
	if err != nil {
		return nil, err
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
		if !domain.ValidTaskPriority(priority) {
			return nil, response.NewValidationError("Unknown task priority", *req.Priority)
		}
	}

	var (
		task       *domain.Task
		teamReused bool
		tagsMade   int
	)
	err = s.txManager.InTx(ctx, func(repos *repository.Repositories) error {
		team, reused, err := resolveTeam(ctx, repos, project, req.TeamID, userID, assigneeIDs, assignees)
		if err != nil {
			return err
		}
		teamReused = reused

		tags, created, err := resolveTags(ctx, repos.Tags, req.Tags)
		if err != nil {
			return err
		}
		tagsMade = created

		task = &domain.Task{
			ProjectID:   project.ID,
			TeamID:      team.ID,
			CreatedByID: userID,
			Title:       req.Title,
			Description: req.Description,
			Status:      domain.TaskStatusPending,
			Priority:    priority,
			StartDate:   req.StartDate,
			Deadline:    req.Deadline,
			Assignees:   assignees,
			Tags:        tags,
		}
		return repos.Tasks.Create(ctx, task)
	})
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
		if req.TeamID == nil {
			if teamReused {
				s.metrics.IncrementTeamReused()
			} else {
				s.metrics.IncrementTeamCreated()
			}
		}
		for i := 0; i < tagsMade; i++ {
			s.metrics.IncrementTagCreated()
		}
	}
	s.cache.Invalidate(ctx, append(assigneeIDs, userID)...)
	s.logger.Info("Task created",
		zap.String("task_id", task.ID.String()),
		zap.String("project_id", project.ID.String()),
		zap.Bool("team_reused", teamReused),
		zap.Int("assignees", len(assigneeIDs)),
	)

	created, err := s.taskRepo.FindByIDForUser(ctx, task.ID, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load created task", err.Error())
	}
	return toTaskResponse(created), nil
}

// GetTasks returns the tasks the requester created or is assigned to
func (s *taskServiceImpl) GetTasks(ctx context.Context, filters *dto.TaskFilters) ([]*dto.TaskResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	var repoFilters *repository.TaskFilters
	if filters != nil {
		repoFilters = repository.NewTaskFilters(filters.ProjectID, filters.TeamID, filters.Status)
	}
	tasks, err := s.taskRepo.FindAllForUser(ctx, userID, repoFilters)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tasks", err.Error())
	}
	responses := make([]*dto.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}
	return responses, nil
}

// UpdateTask applies a partial update. Only the creator or an assignee
// may update; anything else reads as not found. Non-nil assignee and tag
// lists replace the full set, all inside one transaction.
func (s *taskServiceImpl) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	var touched []uuid.UUID
	var updated *domain.Task
	err = s.txManager.InTx(ctx, func(repos *repository.Repositories) error {
		task, err := repos.Tasks.FindByIDForUser(ctx, taskID, userID)
		if err != nil {
			return err
		}
		for _, assignee := range task.Assignees {
			touched = append(touched, assignee.ID)
		}

		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Status != nil {
			status := domain.TaskStatus(*req.Status)
			if !domain.ValidTaskStatus(status) {
				return response.NewValidationError("Unknown task status", *req.Status)
			}
			task.Status = status
		}
		if req.Priority != nil {
			priority := domain.TaskPriority(*req.Priority)
			if !domain.ValidTaskPriority(priority) {
				return response.NewValidationError("Unknown task priority", *req.Priority)
			}
			task.Priority = priority
		}
		if req.StartDate != nil {
			task.StartDate = req.StartDate
		}
		if req.Deadline != nil {
			task.Deadline = req.Deadline
		}
		if err := validateTaskDates(task.StartDate, task.Deadline); err != nil {
			return err
		}

		if req.Assignees != nil {
			ids := dedupeIDs(*req.Assignees)
			users, err := repos.Users.FindByIDs(ctx, ids)
			if err != nil {
				return err
			}
			if len(users) != len(ids) {
				return response.NewValidationError("One or more assignee ids are unknown", "")
			}
			if err := repos.Tasks.ReplaceAssignees(ctx, task, users); err != nil {
				return err
			}
			task.Assignees = users
			touched = append(touched, ids...)
		}

		if req.Tags != nil {
			tags, _, err := resolveTags(ctx, repos.Tags, *req.Tags)
			if err != nil {
				return err
			}
			if err := repos.Tasks.ReplaceTags(ctx, task, tags); err != nil {
				return err
			}
			task.Tags = tags
		}

		if err := repos.Tasks.Update(ctx, task); err != nil {
			return err
		}
		updated = task
		return nil
	})
	if err != nil {
		var appErr *response.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	s.cache.Invalidate(ctx, append(touched, userID)...)

	// The response comes from the committed transaction state. An assignee
	// who hands the task off loses read authority, so a scoped reload here
	// would miss a task that was just updated successfully.
	return toTaskResponse(updated), nil
}

// DeleteTask deletes a task. Creator or assignee only, conflated with
// nonexistence.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	userID, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	task, err := s.taskRepo.FindByIDForUser(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Task not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete task", err.Error())
	}

	touched := []uuid.UUID{userID}
	for _, assignee := range task.Assignees {
		touched = append(touched, assignee.ID)
	}
	s.cache.Invalidate(ctx, touched...)
	s.logger.Info("Task deleted", zap.String("task_id", taskID.String()))
	return nil
}
