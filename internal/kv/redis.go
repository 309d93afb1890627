package kv

import (
	"context"
	"time"

	"todo_api/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// Connect returns a redis client for addr, or nil when addr is empty or the
// server does not answer PING. Callers fall back to in-process behaviour on nil.
func Connect(addr, password string, db int) *redis.Client {
	if addr == "" {
		logger.Info("redis not configured, using in-process fallbacks")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, using in-process fallbacks", "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}

	logger.Info("redis connected", "addr", addr, "db", db)
	return client
}
