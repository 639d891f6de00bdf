package database

import (
	"errors"

	"github.com/Sovanra/DesignDeck/internal/constant"
	"github.com/Sovanra/DesignDeck/internal/model"
	"github.com/Sovanra/DesignDeck/internal/util"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectFile{},
		&model.Annotation{},
		&model.Discussion{},
	)
}

const (
	DemoUserEmail    = "demo@example.com"
	demoUserPassword = "demo123"
)

// SeedDemoUser creates the demo account once. Safe to run on every boot,
// the unique email index backstops concurrent workers racing the check.
func SeedDemoUser(db *gorm.DB) error {
	var existing model.User
	err := db.Where(&model.User{Email: DemoUserEmail}).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := util.HashPassword(demoUserPassword)
	if err != nil {
		return err
	}

	err = db.Create(&model.User{
		Name:     "Demo User",
		Email:    DemoUserEmail,
		Password: hashed,
		Role:     constant.UserRoleUser,
	}).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
