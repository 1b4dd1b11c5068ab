package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"project-task-api/internal/domain"
	"project-task-api/internal/dto"
	"project-task-api/internal/response"
)

func TestTagService_CreateTag(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a global tag", func(t *testing.T) {
		var created *domain.Tag
		tagRepo := &MockTagRepository{
			CreateFunc: func(ctx context.Context, tag *domain.Tag) error {
				tag.ID = uuid.New()
				created = tag
				return nil
			},
		}
		svc := NewTagService(tagRepo, nil, zap.NewNop())

		resp, err := svc.CreateTag(testContext(userID), &dto.CreateTagRequest{
			Name:  "backend",
			Color: "#22c55e",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "backend", created.Name)
		assert.Equal(t, "backend", resp.Name)
	})

	t.Run("duplicate names are allowed", func(t *testing.T) {
		var names []string
		tagRepo := &MockTagRepository{
			CreateFunc: func(ctx context.Context, tag *domain.Tag) error {
				tag.ID = uuid.New()
				names = append(names, tag.Name)
				return nil
			},
		}
		svc := NewTagService(tagRepo, nil, zap.NewNop())

		for i := 0; i < 2; i++ {
			_, err := svc.CreateTag(testContext(userID), &dto.CreateTagRequest{Name: "backend"})
			require.NoError(t, err)
		}
		assert.Equal(t, []string{"backend", "backend"}, names)
	})

	t.Run("fails without user in context", func(t *testing.T) {
		svc := NewTagService(&MockTagRepository{}, nil, zap.NewNop())

		_, err := svc.CreateTag(context.Background(), &dto.CreateTagRequest{Name: "backend"})

		var appErr *response.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, response.ErrCodeUnauthorized, appErr.Code)
	})
}

func TestTagService_GetTags(t *testing.T) {
	tagRepo := &MockTagRepository{
		FindAllFunc: func(ctx context.Context) ([]*domain.Tag, error) {
			return []*domain.Tag{
				{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "backend"},
				{BaseModel: domain.BaseModel{ID: uuid.New()}, Name: "frontend"},
			}, nil
		},
	}
	svc := NewTagService(tagRepo, nil, zap.NewNop())

	tags, err := svc.GetTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "backend", tags[0].Name)
}
