package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilClient_NeverHits(t *testing.T) {
	ctx := context.Background()
	c := New("", "", 0)
	assert.Nil(t, c)

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	var out []string
	c.SetJSON(ctx, "k", []string{"a"}, time.Minute)
	assert.False(t, c.GetJSON(ctx, "k", &out))
	assert.NoError(t, c.Bump(ctx, "v"))
	assert.Zero(t, c.Version(ctx, "v"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedis_FailsSafe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c := NewFromRedis(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))
	defer c.Close()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Bump(ctx, "v"))
	assert.Zero(t, c.Version(ctx, "v"))
	assert.Error(t, c.Ping(ctx))
}

func newMiniredis(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestClient_SetGetWithTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newMiniredis(t)
	require.NoError(t, c.Ping(ctx))

	data, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), data)
	assert.Equal(t, time.Minute, mr.TTL("k"))

	mr.FastForward(time.Minute + time.Second)
	data, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestClient_JSON(t *testing.T) {
	ctx := context.Background()
	c, mr := newMiniredis(t)

	var out []string
	assert.False(t, c.GetJSON(ctx, "list", &out))

	c.SetJSON(ctx, "list", []string{"a", "b"}, time.Minute)
	require.True(t, c.GetJSON(ctx, "list", &out))
	assert.Equal(t, []string{"a", "b"}, out)

	require.NoError(t, mr.Set("broken", "{not json"))
	assert.False(t, c.GetJSON(ctx, "broken", &out))
}

func TestClient_VersionAndBump(t *testing.T) {
	ctx := context.Background()
	c, _ := newMiniredis(t)

	assert.Zero(t, c.Version(ctx, "v"))
	require.NoError(t, c.Bump(ctx, "v"))
	require.NoError(t, c.Bump(ctx, "v"))
	assert.Equal(t, int64(2), c.Version(ctx, "v"))
}

func TestClient_RedisGoesAway(t *testing.T) {
	ctx := context.Background()
	c, mr := newMiniredis(t)
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Bump(ctx, "v"))

	mr.Close()

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.Zero(t, c.Version(ctx, "v"))
	assert.NoError(t, c.Bump(ctx, "v"))
}
