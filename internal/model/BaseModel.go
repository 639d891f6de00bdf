package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timestamps are filled client side by gorm so the column type stays
// portable between the postgres and sqlite drivers.
type BaseModel struct {
	ID        string     `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt *time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"not null" json:"-"`
}

func (bm *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if bm.ID == "" {
		bm.ID = uuid.NewString()
	}
	return
}
