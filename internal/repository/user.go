package repository

import (
	"context"

	constant "github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s \n", userId)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{BaseModel: model.BaseModel{ID: userId}}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s \n", email)

	db := ur.getDB(tx)
	var user *model.User

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Where(&model.User{Email: email}).First(&user).Error; err != nil {
		return user, err
	}

	return user, nil
}

func (ur *UserRepository) Create(ctx context.Context, tx *gorm.DB, newUser *model.User) (*model.User, error) {
	ur.logger.Debugf("Create user with email: %s \n", newUser.Email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.User{}).Create(newUser).Error; err != nil {
		return nil, err
	}

	return newUser, nil
}
