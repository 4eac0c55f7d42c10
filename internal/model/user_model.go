package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string                      `gorm:"type:varchar(255);not null"`
	College      string                      `gorm:"type:varchar(255);not null"`
	Email        string                      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Roll         string                      `gorm:"type:varchar(100);uniqueIndex;not null"`
	Skills       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Domains      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	TeamId       *uuid.UUID                  `gorm:"type:uuid;index"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
