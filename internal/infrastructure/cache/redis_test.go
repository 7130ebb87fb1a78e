package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRedis_SelectsDB(t *testing.T) {
	s := miniredis.RunT(t)

	c, err := OpenRedis(context.Background(), s.Addr(), 3)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.Equal(t, 3, c.Options().DB)

	ctx := context.Background()
	ok, err := c.SetNX(ctx, "idemp:POST:/api/v1/uploads:k", "{}", time.Minute).Result()
	require.NoError(t, err)
	assert.True(t, ok)

	s.Select(3)
	assert.True(t, s.Exists("idemp:POST:/api/v1/uploads:k"))
}

func TestOpenRedis_EmptyAddrDisables(t *testing.T) {
	c, err := OpenRedis(context.Background(), "", 0)
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestOpenRedis_PingFails(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	_, err := OpenRedis(context.Background(), addr, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), addr)
}
