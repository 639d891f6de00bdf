package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/database"
	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/Sovanra/DesignDeck/internal/util"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return NewRepository(db, util.NewLogger("development"))
}

func createTestUser(t *testing.T, repo *Repository, email string) *model.User {
	t.Helper()

	hashed, err := util.HashPassword("demo123")
	require.NoError(t, err)

	user, err := repo.User.Create(context.Background(), nil, &model.User{
		Name:     "Test User",
		Email:    email,
		Password: hashed,
		Role:     constant.UserRoleUser,
	})
	require.NoError(t, err)
	return user
}

func createTestProject(t *testing.T, repo *Repository, ownerId string, name string) *model.Project {
	t.Helper()

	project, err := repo.Project.Create(context.Background(), nil, &model.Project{
		Name:        name,
		Description: "Test description",
		UserID:      ownerId,
	})
	require.NoError(t, err)
	return project
}
