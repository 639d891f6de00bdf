package model

import "github.com/Sovanra/DesignDeck/internal/constant"

type ProjectFile struct {
	BaseModel
	// Name is the sanitized original filename, kept for display.
	Name     string            `gorm:"type:text;not null" json:"name" form:"name"`
	FileType constant.FileType `gorm:"type:varchar(10);not null" json:"fileType" form:"fileType"`
	// FilePath is the generated storage name, decoupled from Name to avoid collisions.
	FilePath string `gorm:"type:text;not null;uniqueIndex" json:"filePath" form:"filePath"`
	FileSize int64  `gorm:"type:bigint;not null" json:"fileSize" form:"fileSize"`

	ProjectID string `gorm:"type:text;not null;index" json:"projectId" form:"projectId"`
}

func (pf ProjectFile) TableName() string {
	return "project_files"
}
