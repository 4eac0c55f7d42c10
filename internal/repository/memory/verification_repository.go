package memory

import (
	"context"
	"strings"
	"time"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// VerificationRepository keeps pending registrations in process memory.
// Used when no Redis address is configured and in tests.
type VerificationRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewVerificationRepository(ttl time.Duration) contract.VerificationRepository {
	c := cache.New(ttl, ttl*2)
	return &VerificationRepository{
		cache: c,
		ttl:   ttl,
	}
}

func (r *VerificationRepository) Save(ctx context.Context, pending *entity.PendingVerification) error {
	copied := *pending
	r.cache.Set(key(pending.Email), &copied, r.ttl)
	return nil
}

func (r *VerificationRepository) Find(ctx context.Context, email string) (*entity.PendingVerification, error) {
	if x, found := r.cache.Get(key(email)); found {
		copied := *x.(*entity.PendingVerification)
		return &copied, nil
	}
	return nil, nil
}

func (r *VerificationRepository) Delete(ctx context.Context, email string) error {
	r.cache.Delete(key(email))
	return nil
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
