package redisdb

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

// NewClient conecta no Redis usado pelo rate limiter e pela deduplicação de
// eventos de webhook. Se a conexão falhar retorna nil e os chamadores
// degradam: sem cache de idempotência rápida e sem rate limit — a máquina de
// estados continua garantindo a correção.
func NewClient(cfg *config.Config, log *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, continuing without it",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		return nil
	}

	return client
}
