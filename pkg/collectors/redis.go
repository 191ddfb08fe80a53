package collectors

import (
	"context"

	backend "github.com/redis/go-redis/v9"

	"github.com/sondeo/sondeo/pkg/models"
)

// RedisCollector summarizes the state of a redis backend.
type RedisCollector struct {
	client *backend.Client
}

func NewRedisCollector(config models.RedisConfiguration) *RedisCollector {
	return &RedisCollector{
		client: backend.NewClient(&backend.Options{
			Addr:     config.Address,
			Password: config.Password,
			DB:       config.DB,
		}),
	}
}

// NewRedisCollectorFromClient wraps an existing client.
func NewRedisCollectorFromClient(client *backend.Client) *RedisCollector {
	return &RedisCollector{client: client}
}

func (c *RedisCollector) Collect(ctx context.Context) (map[string]any, error) {
	keys, err := c.client.DBSize(ctx).Result()
	if err != nil {
		return nil, err
	}

	pong, err := c.client.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"keys": keys,
		"ping": pong,
	}, nil
}
