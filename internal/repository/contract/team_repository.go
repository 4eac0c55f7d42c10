package contract

import (
	"context"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/repository/specification"
)

type TeamRepository interface {
	// Create persists the team together with its member rows.
	Create(ctx context.Context, team *entity.Team) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error)
}
