package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type valorDeTeste struct {
	Nome  string `json:"nome"`
	Total int    `json:"total"`
}

func newTestMemoryCache(t *testing.T) *MemoryCache {
	return NewMemoryCache(time.Minute, time.Minute, nil, zaptest.NewLogger(t))
}

func TestMemoryCacheSetGet(t *testing.T) {
	c := newTestMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "chave", valorDeTeste{Nome: "abc", Total: 3}, time.Minute))

	var lido valorDeTeste
	found, err := c.Get(ctx, "chave", &lido)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "abc", lido.Nome)
	assert.Equal(t, 3, lido.Total)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := newTestMemoryCache(t)

	var lido valorDeTeste
	found, err := c.Get(context.Background(), "inexistente", &lido)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := newTestMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "chave", "valor", time.Minute))
	require.NoError(t, c.Delete(ctx, "chave"))

	var lido string
	found, err := c.Get(ctx, "chave", &lido)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCacheClear(t *testing.T) {
	c := newTestMemoryCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	require.NoError(t, c.Clear(ctx))

	var lido int
	found, _ := c.Get(ctx, "a", &lido)
	assert.False(t, found)
}

func TestNoopCacheNuncaArmazena(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "chave", "valor", time.Minute))

	var lido string
	found, err := c.Get(ctx, "chave", &lido)
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, c.Ping(ctx))
}
