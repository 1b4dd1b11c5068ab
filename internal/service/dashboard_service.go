package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"project-task-api/internal/dto"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// DashboardService defines the interface for dashboard business logic
type DashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}

// dashboardServiceImpl is the implementation of DashboardService
type dashboardServiceImpl struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	cache       *DashboardCache
	logger      *zap.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	cache *DashboardCache,
	logger *zap.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetSummary aggregates the requester's task and project counts. The
// result is served from the Redis cache when fresh; without Redis the
// summary is computed on every call.
func (s *dashboardServiceImpl) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	userID, err := currentUserID(ctx)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, userID); ok {
		return cached, nil
	}

	now := time.Now().UTC()
	counts, err := s.taskRepo.CountsForUser(ctx, userID, now)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to aggregate tasks", err.Error())
	}
	projects, err := s.projectRepo.CountVisible(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count projects", err.Error())
	}

	summary := &dto.DashboardSummaryResponse{
		TotalTasks:  counts.Total,
		ByStatus:    make(map[string]int64, len(counts.ByStatus)),
		ByPriority:  make(map[string]int64, len(counts.ByPriority)),
		Overdue:     counts.Overdue,
		Projects:    projects,
		GeneratedAt: now,
	}
	for status, count := range counts.ByStatus {
		summary.ByStatus[string(status)] = count
	}
	for priority, count := range counts.ByPriority {
		summary.ByPriority[string(priority)] = count
	}

	s.cache.Set(ctx, userID, summary)
	return summary, nil
}
