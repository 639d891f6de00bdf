package repository

import (
	"context"

	constant "github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"gorm.io/gorm"
)

type AnnotationRepository struct {
	*baseRepository
}

func (ar AnnotationRepository) Create(ctx context.Context, tx *gorm.DB, annotation *model.Annotation) (*model.Annotation, error) {
	ar.logger.Debugf("Create annotation with data: %v \n", annotation)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Annotation{}).Create(annotation).Error; err != nil {
		ar.logger.Errorf("Failed to create annotation: %v", err)
		return nil, err
	}

	return annotation, nil
}

func (ar AnnotationRepository) ListByFile(ctx context.Context, tx *gorm.DB, fileId string) ([]model.Annotation, error) {
	ar.logger.Debugf("List annotations for file: %s \n", fileId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var annotations []model.Annotation
	if err := db.WithContext(ctx).Model(&model.Annotation{}).
		Where("file_id = ?", fileId).
		Find(&annotations).Error; err != nil {
		return nil, err
	}

	return annotations, nil
}

func (ar AnnotationRepository) ListByProject(ctx context.Context, tx *gorm.DB, projectId string) ([]model.Annotation, error) {
	ar.logger.Debugf("List annotations for project: %s \n", projectId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var annotations []model.Annotation
	if err := db.WithContext(ctx).Model(&model.Annotation{}).
		Where("project_id = ?", projectId).
		Find(&annotations).Error; err != nil {
		return nil, err
	}

	return annotations, nil
}

// DeleteByAuthor removes an annotation only when it belongs to the caller.
// A foreign annotation surfaces as gorm.ErrRecordNotFound, same as a
// missing one.
func (ar AnnotationRepository) DeleteByAuthor(ctx context.Context, tx *gorm.DB, annotationId string, authorId string) error {
	ar.logger.Debugf("Delete annotation with id: %s by author: %s \n", annotationId, authorId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var annotation model.Annotation
	if err := db.WithContext(ctx).Model(&model.Annotation{}).Where(&model.Annotation{
		BaseModel: model.BaseModel{
			ID: annotationId,
		},
		UserID: authorId,
	}).First(&annotation).Error; err != nil {
		return err
	}

	return db.WithContext(ctx).Delete(&annotation).Error
}
