package credentials

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const userKeyPrefix = "user:"

// Redis stores each credential under "user:<name>". No TTL; registrations
// live until the key is deleted out of band.
type Redis struct {
	rdc *redis.Client
}

func NewRedis(rdc *redis.Client) *Redis { return &Redis{rdc: rdc} }

func (r *Redis) Exists(ctx context.Context, name string) (bool, error) {
	n, err := r.rdc.Exists(ctx, userKeyPrefix+name).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Redis) Save(ctx context.Context, name, password string) error {
	return r.rdc.Set(ctx, userKeyPrefix+name, password, 0).Err()
}
