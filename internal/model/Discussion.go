package model

type Discussion struct {
	BaseModel
	Message string `gorm:"type:text;not null" json:"message" form:"message" binding:"required"`

	ProjectID string  `gorm:"type:text;not null;index" json:"projectId" form:"projectId"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`

	UserID string `gorm:"type:text;not null;index" json:"userId" form:"userId"`
	User   User   `json:"-" form:"-"`
}

func (d Discussion) TableName() string {
	return "discussions"
}
