package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisLimiter implementa limitação de taxa por janela fixa usando
// contadores com expiração no Redis.
type RedisLimiter struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisLimiter cria um novo limitador.
func NewRedisLimiter(client *redis.Client, logger *zap.Logger) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		logger: logger,
	}
}

// Allow informa se a chave (normalmente o IP do cliente) ainda está dentro
// do limite de requisições para a janela.
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/int64(window.Seconds()))

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		// Em caso de falha do Redis, não bloquear a requisição
		l.logger.Warn("rate limiter indisponível, liberando requisição", zap.Error(err))
		return true, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, window).Err(); err != nil {
			l.logger.Warn("falha ao definir expiração do contador", zap.Error(err))
		}
	}

	return count <= int64(limit), nil
}
