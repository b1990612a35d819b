package contracts

import (
	"context"
	"time"
)

// RedisRepository is the slice of Redis the session revocation list needs.
type RedisRepository interface {
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
}
