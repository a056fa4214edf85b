package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RedisCache implementa a interface Cache usando Redis
type RedisCache struct {
	client *redis.Client
	logger *zap.Logger
	tracer trace.Tracer
}

// NewRedisCache cria uma nova instância de RedisCache
func NewRedisCache(addr string, password string, db int, logger *zap.Logger) (*RedisCache, error) {
	tracer := otel.GetTracerProvider().Tracer("helpdesk.cache.redis")

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("conexão com Redis estabelecida",
		zap.String("addr", addr),
		zap.Int("db", db))

	return &RedisCache{
		client: client,
		logger: logger,
		tracer: tracer,
	}, nil
}

// Client retorna o cliente Redis subjacente, usado pelo rate limiter.
func (c *RedisCache) Client() *redis.Client {
	return c.client
}

// Set armazena um valor no cache
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	ctx, span := c.tracer.Start(ctx, "RedisCache.Set",
		trace.WithAttributes(attribute.String("cache.key", key)))
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("falha ao serializar para cache", zap.Error(err))
		span.SetStatus(codes.Error, "serialization failure")
		return err
	}

	if err := c.client.Set(ctx, key, data, expiration).Err(); err != nil {
		c.logger.Error("falha ao armazenar no Redis", zap.String("key", key), zap.Error(err))
		span.SetStatus(codes.Error, "redis set failure")
		return err
	}

	return nil
}

// Get recupera um valor do cache
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "RedisCache.Get",
		trace.WithAttributes(attribute.String("cache.key", key)))
	defer span.End()

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			span.SetAttributes(attribute.Bool("cache.hit", false))
			return false, nil
		}
		span.SetStatus(codes.Error, "redis get failure")
		return false, err
	}

	span.SetAttributes(attribute.Bool("cache.hit", true))

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Error("falha ao deserializar do Redis", zap.String("key", key), zap.Error(err))
		return true, err
	}

	return true, nil
}

// Delete remove um valor do cache
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Clear remove todos os valores do cache
func (c *RedisCache) Clear(ctx context.Context) error {
	return c.client.FlushDB(ctx).Err()
}

// Ping verifica se o Redis está acessível
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
