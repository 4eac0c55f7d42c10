package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Project struct {
	Id            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title         string                      `gorm:"type:varchar(255);not null"`
	Description   string                      `gorm:"type:text"`
	Domain        string                      `gorm:"type:varchar(255)"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Github        string                      `gorm:"type:text"`
	Live          string                      `gorm:"type:text"`
	TeamSize      int                         `gorm:"not null;default:1"`
	ImagePublicId string                      `gorm:"type:varchar(512);not null"`
	ImageURL      string                      `gorm:"type:text;not null"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
