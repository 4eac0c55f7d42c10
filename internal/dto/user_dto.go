package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	Id        uuid.UUID  `json:"id"`
	FullName  string     `json:"fullName"`
	College   string     `json:"college"`
	Email     string     `json:"email"`
	Roll      string     `json:"roll"`
	Skills    []string   `json:"skills"`
	Domains   []string   `json:"domains"`
	TeamId    *uuid.UUID `json:"teamId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type UserEnvelope struct {
	User *UserResponse `json:"user"`
}

type UsersEnvelope struct {
	Users []*UserResponse `json:"users"`
}

// UpdateMeRequest leaves a field untouched when it is empty or omitted.
type UpdateMeRequest struct {
	FullName string   `json:"fullName"`
	College  string   `json:"college"`
	Roll     string   `json:"roll"`
	Skills   []string `json:"skills"`
	Domains  []string `json:"domains"`
}

type DomainMatchQuery struct {
	Search string `query:"search"`
	Domain string `query:"domain"`
}
