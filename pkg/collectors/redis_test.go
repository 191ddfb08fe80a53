package collectors

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisCollector(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	defer mr.Close()

	mr.Set("a", "1")
	mr.Set("b", "2")

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	c := NewRedisCollectorFromClient(client)

	section, err := c.Collect(context.TODO())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), section["keys"])
	assert.Equal(t, "PONG", section["ping"])
}

func TestRedisCollectorUnreachable(t *testing.T) {
	client := backend.NewClient(&backend.Options{
		Addr: "127.0.0.1:1",
	})
	c := NewRedisCollectorFromClient(client)

	section, err := c.Collect(context.TODO())
	assert.Error(t, err)
	assert.Nil(t, section)
}
