package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	verificationKeyPrefix = "phone_verification:"
	idempotencyKeyPrefix  = "idempotency:"
)

type redisRepo struct {
	client *redis.Client
}

func NewRedisRepo(client *redis.Client) *redisRepo {
	return &redisRepo{client: client}
}

func (r *redisRepo) SaveVerificationCode(ctx context.Context, userID, code string, ttl time.Duration) error {
	if err := r.client.Set(ctx, verificationKeyPrefix+userID, code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save verification code: %w", err)
	}
	return nil
}

// VerificationCode возвращает пустую строку, если действующего кода нет.
func (r *redisRepo) VerificationCode(ctx context.Context, userID string) (string, error) {
	code, err := r.client.Get(ctx, verificationKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get verification code: %w", err)
	}
	return code, nil
}

func (r *redisRepo) DeleteVerificationCode(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, verificationKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to delete verification code: %w", err)
	}
	return nil
}

// AcquireIdempotencyKey возвращает false, если ключ уже занят.
func (r *redisRepo) AcquireIdempotencyKey(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, idempotencyKeyPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set idempotency key: %w", err)
	}
	return ok, nil
}

func (r *redisRepo) ReleaseIdempotencyKey(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, idempotencyKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}
