package repository

import (
	"context"

	constant "github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"gorm.io/gorm"
)

type DiscussionRepository struct {
	*baseRepository
}

func (dr DiscussionRepository) Create(ctx context.Context, tx *gorm.DB, discussion *model.Discussion) (*model.Discussion, error) {
	dr.logger.Debugf("Create discussion with data: %v \n", discussion)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Discussion{}).Create(discussion).Error; err != nil {
		dr.logger.Errorf("Failed to create discussion: %v", err)
		return nil, err
	}

	return discussion, nil
}

// ListByProject returns messages oldest first so the thread renders
// like a chat.
func (dr DiscussionRepository) ListByProject(ctx context.Context, tx *gorm.DB, projectId string) ([]model.Discussion, error) {
	dr.logger.Debugf("List discussions for project: %s \n", projectId)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var discussions []model.Discussion
	if err := db.WithContext(ctx).Model(&model.Discussion{}).
		Where("project_id = ?", projectId).
		Order("created_at ASC").
		Find(&discussions).Error; err != nil {
		return nil, err
	}

	return discussions, nil
}
