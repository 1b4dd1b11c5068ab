package service

import (
	"context"

	"github.com/google/uuid"

	"project-task-api/internal/response"
)

type userIDKey struct{}

// UserIDContextKey keys the authenticated user id in request contexts.
// The auth middleware stores under it; a typed key cannot collide with
// other packages' string keys.
var UserIDContextKey = userIDKey{}

// currentUserID extracts the authenticated user id placed in the context
// by the auth middleware
func currentUserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(UserIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, response.NewAppError(response.ErrCodeUnauthorized, "User ID not found in context", "")
	}
	return userID, nil
}

// dedupeIDs removes duplicate ids while preserving order
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// containsID reports whether ids contains id
func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
