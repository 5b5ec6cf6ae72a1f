package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/arkananta/rantai/internal/pkg/database"
	"github.com/arkananta/rantai/internal/pkg/models"
)

// KeyAuthOTP is the Redis key for OTP records. Format: auth:otp:{mobile}
const KeyAuthOTP = "auth:otp:%s"

// RedisOTPRepo stores OTP records in Redis, for deployments that want codes
// to survive a process restart. The key lives twice the code TTL so verify
// can still distinguish an expired code from an unknown mobile.
type RedisOTPRepo struct {
	redisClient *database.RedisClient
}

// NewRedisOTPRepo creates a Redis-backed OTP store
func NewRedisOTPRepo(redisClient *database.RedisClient) *RedisOTPRepo {
	return &RedisOTPRepo{redisClient: redisClient}
}

// Store writes the record, overwriting any prior record for the mobile
func (r *RedisOTPRepo) Store(ctx context.Context, otp *models.OTP) error {
	payload, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	var expiration time.Duration
	if !otp.ExpiresAt.IsZero() {
		expiration = 2 * otp.ExpiresAt.Sub(otp.CreatedAt)
	}

	key := fmt.Sprintf(KeyAuthOTP, otp.Mobile)
	if err := r.redisClient.Set(ctx, key, payload, expiration); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// Get returns the active record, or nil when none exists
func (r *RedisOTPRepo) Get(ctx context.Context, mobile string) (*models.OTP, error) {
	key := fmt.Sprintf(KeyAuthOTP, mobile)
	payload, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(payload), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return &otp, nil
}

// Delete removes the record for the mobile, if any
func (r *RedisOTPRepo) Delete(ctx context.Context, mobile string) error {
	key := fmt.Sprintf(KeyAuthOTP, mobile)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}
	return nil
}
