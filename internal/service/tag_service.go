package service

import (
	"context"

	"go.uber.org/zap"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/metrics"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// TagService defines the interface for tag business logic
type TagService interface {
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	GetTags(ctx context.Context) ([]*dto.TagResponse, error)
}

// tagServiceImpl is the implementation of TagService
type tagServiceImpl struct {
	tagRepo repository.TagRepository
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewTagService creates a new instance of TagService
func NewTagService(tagRepo repository.TagRepository, m *metrics.Metrics, logger *zap.Logger) TagService {
	return &tagServiceImpl{tagRepo: tagRepo, metrics: m, logger: logger}
}

// CreateTag creates a new global tag. Duplicate names are allowed.
func (s *tagServiceImpl) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	if _, err := currentUserID(ctx); err != nil {
		return nil, err
	}

	tag := &domain.Tag{
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create tag", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTagCreated()
	}
	s.logger.Info("Tag created", zap.String("tag_id", tag.ID.String()), zap.String("name", tag.Name))
	return toTagResponse(tag), nil
}

// GetTags returns every tag. Tags are global and not scoped to projects.
func (s *tagServiceImpl) GetTags(ctx context.Context) ([]*dto.TagResponse, error) {
	tags, err := s.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list tags", err.Error())
	}
	responses := make([]*dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, toTagResponse(tag))
	}
	return responses, nil
}
