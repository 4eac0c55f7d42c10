package contract

import (
	"context"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SetTeam points every listed user at teamId; a nil teamId clears the reference.
	SetTeam(ctx context.Context, userIds []uuid.UUID, teamId *uuid.UUID) error
}
