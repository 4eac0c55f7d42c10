package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Prompt string `json:"prompt"`
	ChatId string `json:"chatId"`
}

type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Parts     string    `json:"parts"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatSummaryResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ChatResponse struct {
	Id        uuid.UUID              `json:"id"`
	Title     string                 `json:"title"`
	History   []*ChatMessageResponse `json:"history"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

type ChatsEnvelope struct {
	Chats []*ChatSummaryResponse `json:"chats"`
}

type ChatEnvelope struct {
	Chat *ChatResponse `json:"chat"`
}

type SendChatResponse struct {
	Response string        `json:"response"`
	Chat     *ChatResponse `json:"chat"`
}
