package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestFile(t *testing.T, repo *Repository, projectId string, path string) *model.ProjectFile {
	t.Helper()

	file, err := repo.ProjectFile.Create(context.Background(), nil, &model.ProjectFile{
		Name:      "plan.pdf",
		FileType:  constant.FileTypePdf,
		FilePath:  path,
		FileSize:  42,
		ProjectID: projectId,
	})
	require.NoError(t, err)
	return file
}

func TestAnnotationRepositoryListByFile(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	alice := createTestUser(t, repo, "alice@example.com")
	project := createTestProject(t, repo, alice.ID, "Kitchen Remodel")
	planFile := createTestFile(t, repo, project.ID, "1_plan.pdf")
	budgetFile := createTestFile(t, repo, project.ID, "2_budget.pdf")

	for _, fileId := range []string{planFile.ID, planFile.ID, budgetFile.ID} {
		_, err := repo.Annotation.Create(ctx, nil, &model.Annotation{
			BaseAnnotateModel: model.BaseAnnotateModel{
				Page:      1,
				X:         1,
				Y:         2,
				Width:     3,
				Height:    4,
				ProjectID: project.ID,
			},
			Type:   "note",
			FileID: fileId,
			UserID: alice.ID,
		})
		require.NoError(t, err)
	}

	byFile, err := repo.Annotation.ListByFile(ctx, nil, planFile.ID)
	require.NoError(t, err)
	assert.Len(t, byFile, 2)

	byProject, err := repo.Annotation.ListByProject(ctx, nil, project.ID)
	require.NoError(t, err)
	assert.Len(t, byProject, 3)
}

func TestAnnotationRepositoryDeleteByAuthor(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	alice := createTestUser(t, repo, "alice@example.com")
	bob := createTestUser(t, repo, "bob@example.com")
	project := createTestProject(t, repo, alice.ID, "Kitchen Remodel")
	file := createTestFile(t, repo, project.ID, "1_plan.pdf")

	annotation, err := repo.Annotation.Create(ctx, nil, &model.Annotation{
		BaseAnnotateModel: model.BaseAnnotateModel{
			Page:      1,
			X:         10,
			Y:         20,
			Width:     5,
			Height:    5,
			ProjectID: project.ID,
		},
		Type:   "note",
		Text:   "move the sink",
		FileID: file.ID,
		UserID: alice.ID,
	})
	require.NoError(t, err)

	// The non-author cannot delete and cannot tell the row exists.
	err = repo.Annotation.DeleteByAuthor(ctx, nil, annotation.ID, bob.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	remaining, err := repo.Annotation.ListByFile(ctx, nil, file.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	require.NoError(t, repo.Annotation.DeleteByAuthor(ctx, nil, annotation.ID, alice.ID))

	remaining, err = repo.Annotation.ListByFile(ctx, nil, file.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
