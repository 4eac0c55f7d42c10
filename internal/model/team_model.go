package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	Id        uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string       `gorm:"type:varchar(255);not null"`
	LeaderId  uuid.UUID    `gorm:"type:uuid;not null"`
	Members   []TeamMember `gorm:"foreignKey:TeamId;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `gorm:"autoCreateTime"`
	UpdatedAt time.Time    `gorm:"autoUpdateTime"`
}

func (Team) TableName() string {
	return "teams"
}

type TeamMember struct {
	TeamId   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Role     string    `gorm:"type:varchar(50);not null;default:'Member'"`
	Position int       `gorm:"not null;default:0"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
