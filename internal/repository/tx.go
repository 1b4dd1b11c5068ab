package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles all entity repositories bound to one DB handle.
// Inside a transaction the bundle is rebuilt over the transaction handle
// so multi-entity workflows commit or roll back as a unit.
type Repositories struct {
	Users    UserRepository
	Projects ProjectRepository
	Teams    TeamRepository
	Tasks    TaskRepository
	Tags     TagRepository
	Comments CommentRepository
}

// NewRepositories builds a repository bundle over db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Projects: NewProjectRepository(db),
		Teams:    NewTeamRepository(db),
		Tasks:    NewTaskRepository(db),
		Tags:     NewTagRepository(db),
		Comments: NewCommentRepository(db),
	}
}

// TxManager runs a function inside a single database transaction
type TxManager interface {
	InTx(ctx context.Context, fn func(repos *Repositories) error) error
}

// gormTxManager is the GORM implementation of TxManager
type gormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager over db
func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

// InTx executes fn inside db.Transaction. An error from fn rolls back
// every repository operation performed through the bundle.
func (m *gormTxManager) InTx(ctx context.Context, fn func(repos *Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
