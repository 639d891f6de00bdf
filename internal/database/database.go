package database

import (
	"fmt"
	"time"

	"github.com/Sovanra/DesignDeck/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DB_HOST, cfg.DB_USERNAME, cfg.DB_PASSWORD, cfg.DB_DATABASE, cfg.DB_PORT)

	// TranslateError maps driver unique-violation errors onto
	// gorm.ErrDuplicatedKey, which the seed and register paths rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDb.SetMaxIdleConns(cfg.MaxIdleConns)

	maxIdleTime, err := time.ParseDuration(cfg.MaxIdleTime)
	if err != nil {
		maxIdleTime = 15 * time.Minute
	}
	sqlDb.SetConnMaxIdleTime(maxIdleTime)

	return db, nil
}
