// Package cache stores simulation results in redis so the dashboard's
// repeated what-if calls don't recompute identical projections.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dydtjq94/lycon-engine/internal/simulation"
)

type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func New(addr string, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, key string) (*simulation.RunOutput, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var out simulation.RunOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}

	return &out, true
}

func (r *Redis) Set(ctx context.Context, key string, out *simulation.RunOutput) error {
	data, err := json.Marshal(out)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
