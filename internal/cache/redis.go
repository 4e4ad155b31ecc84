package cache

import (
	"context"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

const keyPrefix = "weather:"

// Redis is a TTL cache backed by a Redis instance. Capacity bounding is left
// to Redis itself; freshness comes from key expiry. Cache failures degrade to
// misses so a lookup never fails because the cache is down.
type Redis struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewRedis(addr string, ttl time.Duration) *Redis {
	return &Redis{
		client: redisv9.NewClient(&redisv9.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, city string) ([]byte, bool) {
	val, err := r.client.Get(ctx, keyPrefix+city).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, city string, payload []byte) {
	_ = r.client.Set(ctx, keyPrefix+city, payload, r.ttl).Err()
}

func (r *Redis) Len(ctx context.Context) int {
	keys, err := r.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return 0
	}
	return len(keys)
}

// Close releases the underlying Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
