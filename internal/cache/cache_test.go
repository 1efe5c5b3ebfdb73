package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_EmptyAddrDisablesCache(t *testing.T) {
	c := New("", "", 0, zap.NewNop())
	assert.Nil(t, c)

	ctx := context.Background()
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.Error(t, c.Ping(ctx))
	c.Close()
}

func TestClient_FailsSafeWhenUnreachable(t *testing.T) {
	// Nothing listens on port 1; every call must degrade to a cache miss.
	c := New("127.0.0.1:1", "", 0, zap.NewNop())
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	v, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, v)
}
