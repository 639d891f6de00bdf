package model

// Page-relative rectangle shared by anything anchored onto a file page.
type BaseAnnotateModel struct {
	Page   uint    `gorm:"type:integer;not null;default:1" json:"page" form:"page"`
	X      float64 `gorm:"type:double precision;not null" json:"x" form:"x"`
	Y      float64 `gorm:"type:double precision;not null" json:"y" form:"y"`
	Width  float64 `gorm:"type:double precision;not null" json:"width" form:"width"`
	Height float64 `gorm:"type:double precision;not null" json:"height" form:"height"`

	ProjectID string  `gorm:"type:text;not null;index" json:"projectId" form:"projectId"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-" form:"-"`
}
