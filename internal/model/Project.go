package model

type Project struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;" json:"name" form:"name" binding:"required"`
	Description string `gorm:"type:text;not null;" json:"description" form:"description" binding:"required"`

	UserID string `gorm:"type:text;not null;index" json:"userId" form:"userId"`
	User   User   `json:"-" form:"-"`

	Files []ProjectFile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"files"`
}

func (p Project) TableName() string {
	return "projects"
}
