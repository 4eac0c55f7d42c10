package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	FullName     string
	College      string
	Email        string
	Roll         string
	Skills       []string
	Domains      []string
	PasswordHash string
	TeamId       *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasTeam reports whether the user currently points at a team.
func (u *User) HasTeam() bool {
	return u.TeamId != nil && *u.TeamId != uuid.Nil
}
