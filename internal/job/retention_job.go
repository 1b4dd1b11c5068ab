package job

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/domain"
)

// RetentionJob permanently removes soft-deleted rows once they have been
// deleted for longer than the configured retention window. Implements
// cron.Job.
type RetentionJob struct {
	db     *gorm.DB
	days   int
	logger *zap.Logger
}

// NewRetentionJob creates a new RetentionJob instance
func NewRetentionJob(db *gorm.DB, days int, logger *zap.Logger) *RetentionJob {
	return &RetentionJob{db: db, days: days, logger: logger}
}

// Run executes one purge pass
func (j *RetentionJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := time.Now().UTC().AddDate(0, 0, -j.days)
	j.logger.Info("Starting retention purge",
		zap.Int("retention_days", j.days),
		zap.Time("cutoff", cutoff),
	)

	// Children before parents so no purge pass leaves dangling references
	targets := []struct {
		name  string
		model interface{}
	}{
		{"comments", &domain.Comment{}},
		{"tasks", &domain.Task{}},
		{"teams", &domain.Team{}},
		{"projects", &domain.Project{}},
	}

	var total int64
	for _, target := range targets {
		result := j.db.WithContext(ctx).
			Unscoped().
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Delete(target.model)
		if result.Error != nil {
			j.logger.Error("Retention purge failed",
				zap.String("table", target.name),
				zap.Error(result.Error),
			)
			continue
		}
		if result.RowsAffected > 0 {
			j.logger.Info("Purged soft-deleted rows",
				zap.String("table", target.name),
				zap.Int64("rows", result.RowsAffected),
			)
		}
		total += result.RowsAffected
	}

	j.logger.Info("Retention purge completed", zap.Int64("total_rows", total))
}
