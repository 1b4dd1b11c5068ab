package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// taskAuthority filters tasks to those the user created or is assigned to
const taskAuthority = "tasks.created_by_id = ? OR EXISTS (SELECT 1 FROM task_assignees ta WHERE ta.task_id = tasks.id AND ta.user_id = ?)"

// TaskCounts aggregates task counts for the dashboard summary
type TaskCounts struct {
	Total      int64
	ByStatus   map[domain.TaskStatus]int64
	ByPriority map[domain.TaskPriority]int64
	Overdue    int64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID, filters *TaskFilters) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	ReplaceAssignees(ctx context.Context, task *domain.Task, assignees []domain.User) error
	ReplaceTags(ctx context.Context, task *domain.Task, tags []domain.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProjectID(ctx context.Context, projectID uuid.UUID) error
	CountsForUser(ctx context.Context, userID uuid.UUID, now time.Time) (*TaskCounts, error)
}

// TaskFilters narrows task listing at the query level
type TaskFilters struct {
	ProjectID *uuid.UUID
	TeamID    *uuid.UUID
	Status    *string
}

// NewTaskFilters builds repository-level task filters
func NewTaskFilters(projectID, teamID *uuid.UUID, status *string) *TaskFilters {
	return &TaskFilters{ProjectID: projectID, TeamID: teamID, Status: status}
}

// taskRepositoryImpl is the GORM implementation of TaskRepository
type taskRepositoryImpl struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create creates a new task together with assignee and tag associations
func (r *taskRepositoryImpl) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID without an authority check
func (r *taskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByIDForUser finds a task only if the user created it or is assigned
// to it. A miss is indistinguishable from a nonexistent task.
func (r *taskRepositoryImpl) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Tags").
		Where("tasks.id = ?", id).
		Where(taskAuthority, userID, userID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindAllForUser returns tasks the user created or is assigned to, with
// assignees, tags and comments (with authors) eagerly loaded
func (r *taskRepositoryImpl) FindAllForUser(ctx context.Context, userID uuid.UUID, filters *TaskFilters) ([]*domain.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("Tags").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		Where(taskAuthority, userID, userID)

	if filters != nil {
		if filters.ProjectID != nil {
			query = query.Where("tasks.project_id = ?", *filters.ProjectID)
		}
		if filters.TeamID != nil {
			query = query.Where("tasks.team_id = ?", *filters.TeamID)
		}
		if filters.Status != nil {
			query = query.Where("tasks.status = ?", *filters.Status)
		}
	}

	var tasks []*domain.Task
	if err := query.Order("tasks.created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves the task's column fields. Associations are replaced
// explicitly via ReplaceAssignees / ReplaceTags.
func (r *taskRepositoryImpl) Update(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Omit("Assignees", "Tags", "Comments").Save(task).Error
}

// ReplaceAssignees replaces the task's full assignee set
func (r *taskRepositoryImpl) ReplaceAssignees(ctx context.Context, task *domain.Task, assignees []domain.User) error {
	return r.db.WithContext(ctx).Model(task).Association("Assignees").Replace(assignees)
}

// ReplaceTags replaces the task's full tag set
func (r *taskRepositoryImpl) ReplaceTags(ctx context.Context, task *domain.Task, tags []domain.Tag) error {
	return r.db.WithContext(ctx).Model(task).Association("Tags").Replace(tags)
}

// Delete removes a task row
func (r *taskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}

// DeleteByProjectID removes all tasks of a project
func (r *taskRepositoryImpl) DeleteByProjectID(ctx context.Context, projectID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectID).Delete(&domain.Task{}).Error
}

// CountsForUser aggregates the user's task counts for the dashboard
func (r *taskRepositoryImpl) CountsForUser(ctx context.Context, userID uuid.UUID, now time.Time) (*TaskCounts, error) {
	counts := &TaskCounts{
		ByStatus:   make(map[domain.TaskStatus]int64),
		ByPriority: make(map[domain.TaskPriority]int64),
	}

	type row struct {
		Key   string
		Count int64
	}

	var statusRows []row
	if err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Select("status AS key, COUNT(*) AS count").
		Where(taskAuthority, userID, userID).
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, sr := range statusRows {
		counts.ByStatus[domain.TaskStatus(sr.Key)] = sr.Count
		counts.Total += sr.Count
	}

	var priorityRows []row
	if err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Select("priority AS key, COUNT(*) AS count").
		Where(taskAuthority, userID, userID).
		Group("priority").
		Scan(&priorityRows).Error; err != nil {
		return nil, err
	}
	for _, pr := range priorityRows {
		counts.ByPriority[domain.TaskPriority(pr.Key)] = pr.Count
	}

	if err := r.db.WithContext(ctx).
		Model(&domain.Task{}).
		Where(taskAuthority, userID, userID).
		Where("deadline IS NOT NULL AND deadline < ? AND status <> ?", now, domain.TaskStatusCompleted).
		Count(&counts.Overdue).Error; err != nil {
		return nil, err
	}

	return counts, nil
}
