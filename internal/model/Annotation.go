package model

type Annotation struct {
	BaseAnnotateModel
	BaseModel

	// Free-form kind, e.g. "highlight" or "note".
	Type  string `gorm:"type:varchar(30);not null" json:"type" form:"type"`
	Text  string `gorm:"type:text" json:"text" form:"text"`
	Color string `gorm:"type:varchar(20)" json:"color" form:"color"`

	FileID string      `gorm:"type:text;not null;index" json:"fileId" form:"fileId"`
	File   ProjectFile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`

	UserID string `gorm:"type:text;not null;index" json:"userId" form:"userId"`
	User   User   `json:"-" form:"-"`
}

func (a Annotation) TableName() string {
	return "annotations"
}
