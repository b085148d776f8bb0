package redis

import (
	"context"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/lifesync/backend/repository"
)

type loginThrottle struct {
	client *redislib.Client
	prefix string
	window time.Duration
}

// NewLoginThrottle creates a Redis-backed failed-login counter. Each
// account's counter expires after the configured window.
func NewLoginThrottle(client *redislib.Client, window time.Duration) repository.LoginThrottle {
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &loginThrottle{
		client: client,
		prefix: "login_attempts:",
		window: window,
	}
}

func (t *loginThrottle) Attempts(ctx context.Context, email string) (int64, error) {
	count, err := t.client.Get(ctx, t.key(email)).Int64()
	if err != nil {
		if err == redislib.Nil {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

func (t *loginThrottle) Fail(ctx context.Context, email string) (int64, error) {
	key := t.key(email)
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	// Refresh the window on every failure so bursts stay counted.
	if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
		return count, err
	}
	return count, nil
}

func (t *loginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *loginThrottle) key(email string) string {
	return fmt.Sprintf("%s%s", t.prefix, email)
}
