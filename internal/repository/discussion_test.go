package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscussionRepositoryListByProjectOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	alice := createTestUser(t, repo, "alice@example.com")
	project := createTestProject(t, repo, alice.ID, "Kitchen Remodel")

	base := time.Now().Add(-time.Hour)
	older := base
	newer := base.Add(time.Minute)

	// Insert the newer message first so ordering cannot come from insertion order.
	_, err := repo.Discussion.Create(ctx, nil, &model.Discussion{
		BaseModel: model.BaseModel{CreatedAt: &newer},
		Message:   "second",
		ProjectID: project.ID,
		UserID:    alice.ID,
	})
	require.NoError(t, err)

	_, err = repo.Discussion.Create(ctx, nil, &model.Discussion{
		BaseModel: model.BaseModel{CreatedAt: &older},
		Message:   "first",
		ProjectID: project.ID,
		UserID:    alice.ID,
	})
	require.NoError(t, err)

	discussions, err := repo.Discussion.ListByProject(ctx, nil, project.ID)
	require.NoError(t, err)
	require.Len(t, discussions, 2)
	assert.Equal(t, "first", discussions[0].Message)
	assert.Equal(t, "second", discussions[1].Message)
}
