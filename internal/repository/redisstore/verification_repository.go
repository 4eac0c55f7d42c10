package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"teamsync-be/internal/entity"
	"teamsync-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:"

// VerificationRepository stores pending registrations as JSON with a Redis TTL.
type VerificationRepository struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewVerificationRepository(client redis.Cmdable, ttl time.Duration) contract.VerificationRepository {
	return &VerificationRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *VerificationRepository) Save(ctx context.Context, pending *entity.PendingVerification) error {
	payload, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("marshal pending verification: %w", err)
	}
	return r.client.Set(ctx, key(pending.Email), payload, r.ttl).Err()
}

func (r *VerificationRepository) Find(ctx context.Context, email string) (*entity.PendingVerification, error) {
	raw, err := r.client.Get(ctx, key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var pending entity.PendingVerification
	if err := json.Unmarshal(raw, &pending); err != nil {
		return nil, fmt.Errorf("unmarshal pending verification: %w", err)
	}
	return &pending, nil
}

func (r *VerificationRepository) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, key(email)).Err()
}

func key(email string) string {
	return keyPrefix + strings.ToLower(strings.TrimSpace(email))
}
