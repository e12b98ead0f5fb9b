package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ZSet is a thin wrapper over a redis sorted set.
type ZSet struct {
	client *redis.Client
	key    string
}

func NewZSet(cache *redis.Client, key string) ZSet {
	return ZSet{
		key:    key,
		client: cache,
	}
}

type ZSetKVP = redis.Z

func (zz *ZSet) AddValues(ctx context.Context, keys ...ZSetKVP) (int64, error) {
	cmd := zz.client.ZAddArgs(ctx, zz.key, redis.ZAddArgs{
		NX:      true,
		Members: keys,
	})
	return cmd.Result()
}

func (zz *ZSet) AddValuesWithScore(ctx context.Context, score float64, keys ...string) error {
	zArgs := make([]redis.Z, 0, len(keys))
	for _, k := range keys {
		zArgs = append(zArgs, redis.Z{Member: k, Score: score})
	}
	_, err := zz.AddValues(ctx, zArgs...)
	return err
}

// Newest returns the highest scored member, ok is false for an empty set.
func (zz *ZSet) Newest(ctx context.Context) (ZSetKVP, bool, error) {
	vals, err := zz.client.ZRevRangeWithScores(ctx, zz.key, 0, 0).Result()
	if err != nil {
		return ZSetKVP{}, false, err
	}
	if len(vals) == 0 {
		return ZSetKVP{}, false, nil
	}
	return vals[0], true, nil
}

func (zz *ZSet) Count(ctx context.Context) (int64, error) {
	cmd := zz.client.ZCount(ctx, zz.key, "-inf", "+inf")
	return cmd.Val(), cmd.Err()
}

func (zz *ZSet) RemoveByScore(ctx context.Context, min, max int64) (int64, error) {
	cmd := zz.client.ZRemRangeByScore(ctx, zz.key, fmt.Sprintf("%d", min), fmt.Sprintf("%d", max))
	return cmd.Val(), cmd.Err()
}

func (zz *ZSet) Expire(ctx context.Context, ttl time.Duration) error {
	return zz.client.Expire(ctx, zz.key, ttl).Err()
}

func (zz *ZSet) Clear(ctx context.Context) error {
	return zz.client.Del(ctx, zz.key).Err()
}
