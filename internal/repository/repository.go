package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB          *gorm.DB
	User        *UserRepository
	Project     *ProjectRepository
	ProjectFile *ProjectFileRepository
	Annotation  *AnnotationRepository
	Discussion  *DiscussionRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		DB:          db,
		User:        &UserRepository{baseRepository: br},
		Project:     &ProjectRepository{baseRepository: br},
		ProjectFile: &ProjectFileRepository{baseRepository: br},
		Annotation:  &AnnotationRepository{baseRepository: br},
		Discussion:  &DiscussionRepository{baseRepository: br},
	}
}

func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
