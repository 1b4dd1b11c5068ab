package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"project-task-api/internal/domain"
	"project-task-api/internal/repository"
	"project-task-api/internal/response"
)

// UserSync returns a middleware that upserts the authenticated user's
// row from the token claims. Runs after Auth; every request refreshes
// the identity fields so user rows always exist before they are
// referenced by projects, teams or tasks.
func UserSync(userRepo repository.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user_id")
		userID, ok := value.(uuid.UUID)
		if !exists || !ok {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
			c.Abort()
			return
		}

		user := &domain.User{
			BaseModel: domain.BaseModel{ID: userID},
			Email:     c.GetString("user_email"),
			Name:      c.GetString("user_name"),
			Image:     c.GetString("user_image"),
		}
		if err := userRepo.Upsert(c.Request.Context(), user); err != nil {
			logger.Error("User sync failed",
				zap.String("user_id", userID.String()),
				zap.Error(err),
			)
			response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Failed to sync user")
			c.Abort()
			return
		}

		c.Next()
	}
}
