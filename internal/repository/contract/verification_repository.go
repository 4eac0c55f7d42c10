package contract

import (
	"context"

	"teamsync-be/internal/entity"
)

// VerificationRepository holds short-lived registration drafts keyed by email.
// Records expire on their own; Find reports (nil, nil) for missing or expired entries.
type VerificationRepository interface {
	Save(ctx context.Context, pending *entity.PendingVerification) error
	Find(ctx context.Context, email string) (*entity.PendingVerification, error)
	Delete(ctx context.Context, email string) error
}
