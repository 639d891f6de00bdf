package repository

import (
	"context"

	constant "github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project with data: %v \n", project)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return project, err
	}

	return project, nil
}

func (pr ProjectRepository) ListByOwner(ctx context.Context, tx *gorm.DB, ownerId string) ([]model.Project, error) {
	pr.logger.Debugf("List projects for owner: %s \n", ownerId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).Preload("Files").
		Where("user_id = ?", ownerId).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// GetByIdAndOwner folds "forbidden" into gorm.ErrRecordNotFound so callers
// cannot probe for the existence of other users' projects.
func (pr ProjectRepository) GetByIdAndOwner(ctx context.Context, tx *gorm.DB, projectId string, ownerId string) (*model.Project, error) {
	pr.logger.Debugf("Get project with id: %s for owner: %s \n", projectId, ownerId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project *model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).Preload("Files").Where(&model.Project{
		BaseModel: model.BaseModel{
			ID: projectId,
		},
		UserID: ownerId,
	}).First(&project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, projectId string) (*model.Project, error) {
	pr.logger.Debugf("Get project with id: %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project *model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).Where(&model.Project{
		BaseModel: model.BaseModel{
			ID: projectId,
		},
	}).First(&project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// DeleteWithFiles removes the project's file rows then the project row in
// one transaction. Stored bytes are the caller's concern.
func (pr ProjectRepository) DeleteWithFiles(ctx context.Context, tx *gorm.DB, projectId string) error {
	pr.logger.Debugf("Delete project with id: %s \n", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.Annotation{}).Error; err != nil {
			return err
		}
		if err := tx.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.Discussion{}).Error; err != nil {
			return err
		}
		if err := tx.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.ProjectFile{}).Error; err != nil {
			return err
		}
		return tx.WithContext(ctx).Where(&model.Project{
			BaseModel: model.BaseModel{
				ID: projectId,
			},
		}).Delete(&model.Project{}).Error
	})
}
