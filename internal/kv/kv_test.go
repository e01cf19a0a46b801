package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClientIsEmptyStore(t *testing.T) {
	var c *Client
	ctx := context.Background()

	c.Mark(ctx, "k", time.Minute)
	assert.False(t, c.Marked(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedisReadsAsAbsent(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	c.Mark(ctx, "k", time.Minute)
	assert.False(t, c.Marked(ctx, "k"))
	assert.Error(t, c.Ping(ctx))
}
