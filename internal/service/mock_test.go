package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"project-task-api/internal/domain"
	"project-task-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	UpsertFunc    func(ctx context.Context, user *domain.User) error
	FindByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	FindAllFunc   func(ctx context.Context) ([]*domain.User, error)
	UpdateFunc    func(ctx context.Context, user *domain.User) error
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *domain.User) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	// Default: every id resolves to a user
	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, domain.User{BaseModel: domain.BaseModel{ID: id}})
	}
	return users, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	CreateFunc           func(ctx context.Context, project *domain.Project) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByIDAndOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error)
	FindVisibleByIDFunc  func(ctx context.Context, id, userID uuid.UUID) (*domain.Project, error)
	FindAllVisibleFunc   func(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error)
	IsOwnerOrMemberFunc  func(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	CountVisibleFunc     func(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateFunc           func(ctx context.Context, project *domain.Project) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	ClearMembersFunc     func(ctx context.Context, project *domain.Project) error
}

func (m *MockProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Project, error) {
	if m.FindByIDAndOwnerFunc != nil {
		return m.FindByIDAndOwnerFunc(ctx, id, ownerID)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindVisibleByID(ctx context.Context, id, userID uuid.UUID) (*domain.Project, error) {
	if m.FindVisibleByIDFunc != nil {
		return m.FindVisibleByIDFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockProjectRepository) FindAllVisible(ctx context.Context, userID uuid.UUID) ([]*domain.Project, error) {
	if m.FindAllVisibleFunc != nil {
		return m.FindAllVisibleFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockProjectRepository) IsOwnerOrMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	if m.IsOwnerOrMemberFunc != nil {
		return m.IsOwnerOrMemberFunc(ctx, projectID, userID)
	}
	return false, nil
}

func (m *MockProjectRepository) CountVisible(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountVisibleFunc != nil {
		return m.CountVisibleFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, project)
	}
	return nil
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockProjectRepository) ClearMembers(ctx context.Context, project *domain.Project) error {
	if m.ClearMembersFunc != nil {
		return m.ClearMembersFunc(ctx, project)
	}
	return nil
}

// MockTeamRepository is a mock implementation of TeamRepository
type MockTeamRepository struct {
	CreateFunc            func(ctx context.Context, team *domain.Team) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	FindByIDAndLeadFunc   func(ctx context.Context, id, leadID uuid.UUID) (*domain.Team, error)
	FindVisibleByIDFunc   func(ctx context.Context, id, userID uuid.UUID) (*domain.Team, error)
	FindAllVisibleFunc    func(ctx context.Context, userID uuid.UUID) ([]*domain.Team, error)
	FindByProjectIDFunc   func(ctx context.Context, projectID uuid.UUID) ([]*domain.Team, error)
	UpdateFunc            func(ctx context.Context, team *domain.Team) error
	ReplaceMembersFunc    func(ctx context.Context, team *domain.Team, members []domain.User) error
	DeleteByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) error
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindByIDAndLead(ctx context.Context, id, leadID uuid.UUID) (*domain.Team, error) {
	if m.FindByIDAndLeadFunc != nil {
		return m.FindByIDAndLeadFunc(ctx, id, leadID)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindVisibleByID(ctx context.Context, id, userID uuid.UUID) (*domain.Team, error) {
	if m.FindVisibleByIDFunc != nil {
		return m.FindVisibleByIDFunc(ctx, id, userID)
	}
	return &domain.Team{BaseModel: domain.BaseModel{ID: id}}, nil
}

func (m *MockTeamRepository) FindAllVisible(ctx context.Context, userID uuid.UUID) ([]*domain.Team, error) {
	if m.FindAllVisibleFunc != nil {
		return m.FindAllVisibleFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockTeamRepository) FindByProjectID(ctx context.Context, projectID uuid.UUID) ([]*domain.Team, error) {
	if m.FindByProjectIDFunc != nil {
		return m.FindByProjectIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *MockTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, team)
	}
	return nil
}

func (m *MockTeamRepository) ReplaceMembers(ctx context.Context, team *domain.Team, members []domain.User) error {
	if m.ReplaceMembersFunc != nil {
		return m.ReplaceMembersFunc(ctx, team, members)
	}
	return nil
}

func (m *MockTeamRepository) DeleteByProjectID(ctx context.Context, projectID uuid.UUID) error {
	if m.DeleteByProjectIDFunc != nil {
		return m.DeleteByProjectIDFunc(ctx, projectID)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc            func(ctx context.Context, task *domain.Task) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByIDForUserFunc   func(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)
	FindAllForUserFunc    func(ctx context.Context, userID uuid.UUID, filters *repository.TaskFilters) ([]*domain.Task, error)
	UpdateFunc            func(ctx context.Context, task *domain.Task) error
	ReplaceAssigneesFunc  func(ctx context.Context, task *domain.Task, assignees []domain.User) error
	ReplaceTagsFunc       func(ctx context.Context, task *domain.Task, tags []domain.Tag) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	DeleteByProjectIDFunc func(ctx context.Context, projectID uuid.UUID) error
	CountsForUserFunc     func(ctx context.Context, userID uuid.UUID, now time.Time) (*repository.TaskCounts, error)
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTaskRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	if m.FindByIDForUserFunc != nil {
		return m.FindByIDForUserFunc(ctx, id, userID)
	}
	return &domain.Task{BaseModel: domain.BaseModel{ID: id}}, nil
}

func (m *MockTaskRepository) FindAllForUser(ctx context.Context, userID uuid.UUID, filters *repository.TaskFilters) ([]*domain.Task, error) {
	if m.FindAllForUserFunc != nil {
		return m.FindAllForUserFunc(ctx, userID, filters)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) ReplaceAssignees(ctx context.Context, task *domain.Task, assignees []domain.User) error {
	if m.ReplaceAssigneesFunc != nil {
		return m.ReplaceAssigneesFunc(ctx, task, assignees)
	}
	return nil
}

func (m *MockTaskRepository) ReplaceTags(ctx context.Context, task *domain.Task, tags []domain.Tag) error {
	if m.ReplaceTagsFunc != nil {
		return m.ReplaceTagsFunc(ctx, task, tags)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) DeleteByProjectID(ctx context.Context, projectID uuid.UUID) error {
	if m.DeleteByProjectIDFunc != nil {
		return m.DeleteByProjectIDFunc(ctx, projectID)
	}
	return nil
}

func (m *MockTaskRepository) CountsForUser(ctx context.Context, userID uuid.UUID, now time.Time) (*repository.TaskCounts, error) {
	if m.CountsForUserFunc != nil {
		return m.CountsForUserFunc(ctx, userID, now)
	}
	return &repository.TaskCounts{
		ByStatus:   map[domain.TaskStatus]int64{},
		ByPriority: map[domain.TaskPriority]int64{},
	}, nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	CreateFunc    func(ctx context.Context, tag *domain.Tag) error
	FindByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Tag, error)
	FindByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error)
	FindAllFunc   func(ctx context.Context) ([]*domain.Tag, error)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tag)
	}
	return nil
}

func (m *MockTagRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tag, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	tags := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, domain.Tag{BaseModel: domain.BaseModel{ID: id}})
	}
	return tags, nil
}

func (m *MockTagRepository) FindAll(ctx context.Context) ([]*domain.Tag, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc            func(ctx context.Context, comment *domain.Comment) error
	FindByIDAndAuthorFunc func(ctx context.Context, id, authorID uuid.UUID) (*domain.Comment, error)
	FindByTaskIDFunc      func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)
	UpdateFunc            func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByIDAndAuthor(ctx context.Context, id, authorID uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDAndAuthorFunc != nil {
		return m.FindByIDAndAuthorFunc(ctx, id, authorID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByTaskID(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTxManager runs the transactional function against a fixed
// repository bundle, without a real transaction
type MockTxManager struct {
	Repos    *repository.Repositories
	InTxFunc func(ctx context.Context, fn func(repos *repository.Repositories) error) error
}

func (m *MockTxManager) InTx(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	if m.InTxFunc != nil {
		return m.InTxFunc(ctx, fn)
	}
	return fn(m.Repos)
}

// testContext returns a context carrying the given user id, matching
// what the auth middleware installs
func testContext(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), UserIDContextKey, userID)
}
