package cache

import (
	"context"
	"time"
)

// NoopCache é uma implementação de Cache que não armazena nada. Usada
// quando o cache está desabilitado na configuração.
type NoopCache struct{}

// NewNoopCache cria um cache no-op.
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (c *NoopCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (c *NoopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (c *NoopCache) Clear(ctx context.Context) error {
	return nil
}

func (c *NoopCache) Ping(ctx context.Context) error {
	return nil
}
