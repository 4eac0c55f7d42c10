package contract

import (
	"context"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	CreateMany(ctx context.Context, messages []*entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
