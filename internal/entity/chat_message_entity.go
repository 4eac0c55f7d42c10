package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)

type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	Position      int
	CreatedAt     time.Time
}
