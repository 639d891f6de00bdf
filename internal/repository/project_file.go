package repository

import (
	"context"

	constant "github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"gorm.io/gorm"
)

type ProjectFileRepository struct {
	*baseRepository
}

func (pfr ProjectFileRepository) Create(ctx context.Context, tx *gorm.DB, file *model.ProjectFile) (*model.ProjectFile, error) {
	pfr.logger.Debugf("Create project file with data: %v \n", file)

	db := pfr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.ProjectFile{}).Create(file).Error; err != nil {
		return file, err
	}

	return file, nil
}

func (pfr ProjectFileRepository) GetById(ctx context.Context, tx *gorm.DB, fileId string) (*model.ProjectFile, error) {
	pfr.logger.Debugf("Get project file with id: %s \n", fileId)

	db := pfr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var file *model.ProjectFile
	if err := db.WithContext(ctx).Model(&model.ProjectFile{}).Where(&model.ProjectFile{
		BaseModel: model.BaseModel{
			ID: fileId,
		},
	}).First(&file).Error; err != nil {
		return nil, err
	}

	return file, nil
}

func (pfr ProjectFileRepository) ListByProject(ctx context.Context, tx *gorm.DB, projectId string) ([]model.ProjectFile, error) {
	pfr.logger.Debugf("List project files for project: %s \n", projectId)

	db := pfr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var files []model.ProjectFile
	if err := db.WithContext(ctx).Model(&model.ProjectFile{}).
		Where("project_id = ?", projectId).
		Find(&files).Error; err != nil {
		return nil, err
	}

	return files, nil
}

func (pfr ProjectFileRepository) GetByFilePath(ctx context.Context, tx *gorm.DB, filePath string) (*model.ProjectFile, error) {
	pfr.logger.Debugf("Get project file with file path: %s \n", filePath)

	db := pfr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var file *model.ProjectFile
	if err := db.WithContext(ctx).Model(&model.ProjectFile{}).Where(&model.ProjectFile{
		FilePath: filePath,
	}).First(&file).Error; err != nil {
		return nil, err
	}

	return file, nil
}
