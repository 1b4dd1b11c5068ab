package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"project-task-api/internal/database"
	"project-task-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "Failed to connect to test database")

	database.RegisterUUIDCallback(db)

	statements := []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			name TEXT,
			email TEXT,
			image TEXT,
			role TEXT,
			department TEXT
		)`,
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			start_date DATETIME NOT NULL,
			end_date DATETIME
		)`,
		`CREATE TABLE project_members (
			project_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			PRIMARY KEY (project_id, user_id)
		)`,
		`CREATE TABLE teams (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			project_id TEXT NOT NULL,
			lead_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE team_members (
			team_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			PRIMARY KEY (team_id, user_id)
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			project_id TEXT NOT NULL,
			team_id TEXT NOT NULL,
			created_by_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'PENDING',
			priority TEXT NOT NULL DEFAULT 'MEDIUM',
			start_date DATETIME,
			deadline DATETIME
		)`,
		`CREATE TABLE task_assignees (
			task_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			PRIMARY KEY (task_id, user_id)
		)`,
		`CREATE TABLE tags (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			name TEXT NOT NULL,
			color TEXT,
			description TEXT
		)`,
		`CREATE TABLE task_tags (
			task_id TEXT NOT NULL,
			tag_id TEXT NOT NULL,
			PRIMARY KEY (task_id, tag_id)
		)`,
		`CREATE TABLE comments (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			deleted_at DATETIME,
			task_id TEXT NOT NULL,
			author_id TEXT NOT NULL,
			content TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		require.NoError(t, db.Exec(stmt).Error, "Failed to create table")
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) domain.User {
	user := domain.User{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      name,
		Email:     uuid.NewString()[:8] + "@example.com",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestProjectRepository_Visibility(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	owner := seedUser(t, db, "Owner")
	member := seedUser(t, db, "Member")
	outsider := seedUser(t, db, "Outsider")

	project := &domain.Project{
		OwnerID:   owner.ID,
		Name:      "Visible",
		Status:    domain.ProjectStatusActive,
		StartDate: time.Now(),
		Members:   []domain.User{member},
	}
	require.NoError(t, repo.Create(ctx, project))

	t.Run("owner and member can see the project", func(t *testing.T) {
		for _, userID := range []uuid.UUID{owner.ID, member.ID} {
			got, err := repo.FindVisibleByID(ctx, project.ID, userID)
			require.NoError(t, err)
			assert.Equal(t, project.ID, got.ID)
		}
	})

	t.Run("outsider lookup is a record-not-found", func(t *testing.T) {
		_, err := repo.FindVisibleByID(ctx, project.ID, outsider.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("owner-scoped lookup excludes members", func(t *testing.T) {
		_, err := repo.FindByIDAndOwner(ctx, project.ID, owner.ID)
		require.NoError(t, err)
		_, err = repo.FindByIDAndOwner(ctx, project.ID, member.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("count visible", func(t *testing.T) {
		count, err := repo.CountVisible(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		count, err = repo.CountVisible(ctx, outsider.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestTaskRepository_AuthorityAndCounts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	creator := seedUser(t, db, "Creator")
	assignee := seedUser(t, db, "Assignee")
	outsider := seedUser(t, db, "Outsider")

	projectID := uuid.New()
	teamID := uuid.New()

	deadline := time.Now().UTC().Add(-time.Hour)
	overdue := &domain.Task{
		ProjectID:   projectID,
		TeamID:      teamID,
		CreatedByID: creator.ID,
		Title:       "Overdue",
		Status:      domain.TaskStatusPending,
		Priority:    domain.TaskPriorityHigh,
		Deadline:    &deadline,
		Assignees:   []domain.User{assignee},
	}
	require.NoError(t, repo.Create(ctx, overdue))

	done := &domain.Task{
		ProjectID:   projectID,
		TeamID:      teamID,
		CreatedByID: creator.ID,
		Title:       "Done",
		Status:      domain.TaskStatusCompleted,
		Priority:    domain.TaskPriorityMedium,
		Deadline:    &deadline,
	}
	require.NoError(t, repo.Create(ctx, done))

	t.Run("creator and assignee can see the task", func(t *testing.T) {
		for _, userID := range []uuid.UUID{creator.ID, assignee.ID} {
			got, err := repo.FindByIDForUser(ctx, overdue.ID, userID)
			require.NoError(t, err)
			assert.Equal(t, overdue.ID, got.ID)
		}
		_, err := repo.FindByIDForUser(ctx, overdue.ID, outsider.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("status filter narrows the listing", func(t *testing.T) {
		status := string(domain.TaskStatusCompleted)
		tasks, err := repo.FindAllForUser(ctx, creator.ID, NewTaskFilters(nil, nil, &status))
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, done.ID, tasks[0].ID)
	})

	t.Run("completed tasks are never overdue", func(t *testing.T) {
		counts, err := repo.CountsForUser(ctx, creator.ID, time.Now().UTC())
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts.Total)
		assert.Equal(t, int64(1), counts.Overdue)
		assert.Equal(t, int64(1), counts.ByStatus[domain.TaskStatusPending])
		assert.Equal(t, int64(1), counts.ByPriority[domain.TaskPriorityHigh])
	})

	t.Run("assignee replacement is a full swap", func(t *testing.T) {
		replacement := seedUser(t, db, "Replacement")
		task, err := repo.FindByIDForUser(ctx, overdue.ID, creator.ID)
		require.NoError(t, err)
		require.NoError(t, repo.ReplaceAssignees(ctx, task, []domain.User{replacement}))

		reloaded, err := repo.FindByIDForUser(ctx, overdue.ID, creator.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Assignees, 1)
		assert.Equal(t, replacement.ID, reloaded.Assignees[0].ID)

		// The previous assignee lost authority along with the assignment
		_, err = repo.FindByIDForUser(ctx, overdue.ID, assignee.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestTeamRepository_Scoping(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewTeamRepository(db)

	lead := seedUser(t, db, "Lead")
	member := seedUser(t, db, "Member")
	outsider := seedUser(t, db, "Outsider")

	projectID := uuid.New()
	team := &domain.Team{
		ProjectID: projectID,
		LeadID:    lead.ID,
		Name:      "Crew",
		Members:   []domain.User{member},
	}
	require.NoError(t, repo.Create(ctx, team))

	t.Run("lead and member can see the team", func(t *testing.T) {
		for _, userID := range []uuid.UUID{lead.ID, member.ID} {
			got, err := repo.FindVisibleByID(ctx, team.ID, userID)
			require.NoError(t, err)
			assert.Equal(t, team.ID, got.ID)
		}
		_, err := repo.FindVisibleByID(ctx, team.ID, outsider.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("lead-scoped lookup excludes members", func(t *testing.T) {
		_, err := repo.FindByIDAndLead(ctx, team.ID, lead.ID)
		require.NoError(t, err)
		_, err = repo.FindByIDAndLead(ctx, team.ID, member.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("project teams listing", func(t *testing.T) {
		teams, err := repo.FindByProjectID(ctx, projectID)
		require.NoError(t, err)
		require.Len(t, teams, 1)
		require.Len(t, teams[0].Members, 1)
	})
}

func TestCommentRepository_AuthorScoping(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCommentRepository(db)

	author := seedUser(t, db, "Author")
	reader := seedUser(t, db, "Reader")
	taskID := uuid.New()

	comment := &domain.Comment{
		TaskID:   taskID,
		AuthorID: author.ID,
		Content:  "First",
	}
	require.NoError(t, repo.Create(ctx, comment))

	t.Run("author-scoped lookup", func(t *testing.T) {
		got, err := repo.FindByIDAndAuthor(ctx, comment.ID, author.ID)
		require.NoError(t, err)
		assert.Equal(t, comment.ID, got.ID)

		_, err = repo.FindByIDAndAuthor(ctx, comment.ID, reader.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("task comments come newest first with authors", func(t *testing.T) {
		later := &domain.Comment{TaskID: taskID, AuthorID: reader.ID, Content: "Second"}
		// Explicit timestamps keep the ordering deterministic
		later.CreatedAt = comment.CreatedAt.Add(time.Minute)
		later.UpdatedAt = later.CreatedAt
		require.NoError(t, db.Create(later).Error)

		comments, err := repo.FindByTaskID(ctx, taskID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "Second", comments[0].Content)
		assert.Equal(t, reader.ID, comments[0].Author.ID)
	})
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	tx := NewTxManager(db)

	owner := seedUser(t, db, "Owner")

	err := tx.InTx(ctx, func(repos *Repositories) error {
		project := &domain.Project{
			OwnerID:   owner.ID,
			Name:      "Doomed",
			Status:    domain.ProjectStatusActive,
			StartDate: time.Now(),
		}
		if err := repos.Projects.Create(ctx, project); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&domain.Project{}).Count(&count).Error)
	assert.Zero(t, count, "rolled back project must not persist")
}
