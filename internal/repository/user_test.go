package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	user := createTestUser(t, repo, "alice@example.com")
	assert.NotEmpty(t, user.ID)
	require.NotNil(t, user.CreatedAt, "gorm fills the timestamp on insert")

	byEmail, err := repo.User.GetByEmail(ctx, nil, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byId, err := repo.User.GetById(ctx, nil, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byId.Email)
}

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.User.GetByEmail(context.Background(), nil, "nobody@example.com")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	createTestUser(t, repo, "alice@example.com")

	_, err := repo.User.Create(ctx, nil, &model.User{
		Name:     "Second Alice",
		Email:    "alice@example.com",
		Password: "irrelevant",
	})
	// The driver's unique-violation error must translate so callers can
	// tell a conflict apart from an internal failure.
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}
