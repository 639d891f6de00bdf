package model

import "github.com/Sovanra/DesignDeck/internal/constant"

type User struct {
	BaseModel
	Name  string `gorm:"type:varchar(100);not null;" json:"name" form:"name" binding:"required"`
	Email string `gorm:"unique;not null;type:text" json:"email" form:"email" binding:"required,email"`
	// bcrypt hash, never serialized
	Password string            `gorm:"type:text;not null" json:"-" form:"-"`
	Role     constant.UserRole `gorm:"type:varchar(10);not null;default:user" json:"role"`
}

func (u User) TableName() string {
	return "users"
}
