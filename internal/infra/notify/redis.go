package notify

import (
	"context"
	"encoding/json"
	"time"

	"venue-reservation/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisRelay publishes each event on a pub/sub channel named after its room,
// or on "<prefix>:broadcast" for events without one.
type RedisRelay struct {
	client *redis.Client
	prefix string
}

func NewRedisClient(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "ping redis at %s", addr)
	}
	return client, nil
}

func NewRedisRelay(client *redis.Client, prefix string) *RedisRelay {
	return &RedisRelay{client: client, prefix: prefix}
}

func (r *RedisRelay) Name() string { return "redis" }

func (r *RedisRelay) Channel(e Event) string {
	if room := e.Room(); room != "" {
		return r.prefix + ":" + room
	}
	return r.prefix + ":broadcast"
}

func (r *RedisRelay) Forward(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "marshal event")
	}
	if err := r.client.Publish(ctx, r.Channel(e), payload).Err(); err != nil {
		return errs.Wrap(err, "redis publish")
	}
	return nil
}

func (r *RedisRelay) Close() error {
	return r.client.Close()
}
