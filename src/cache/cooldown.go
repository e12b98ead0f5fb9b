// Package cache keeps the shared state of calculator servers in redis: the
// last uploaded league feed and the refresh cooldown guarding it.
package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrCooldown = errors.New("cooldown active")

// Cooldown allows one event per window across every server sharing the
// redis instance. Events are kept in a sorted set scored by unix millis.
type Cooldown struct {
	set    ZSet
	window time.Duration
	now    func() time.Time
}

func NewCooldown(rd *redis.Client, key string, window time.Duration) *Cooldown {
	return &Cooldown{
		set:    NewZSet(rd, key),
		window: window,
		now:    time.Now,
	}
}

// Acquire records an event if the window is clear. When it is not, the
// returned duration is the time left and the error is ErrCooldown.
func (c *Cooldown) Acquire(ctx context.Context) (time.Duration, error) {
	now := c.now()
	cutoff := now.Add(-c.window).UnixMilli()
	if _, err := c.set.RemoveByScore(ctx, 0, cutoff); err != nil {
		return 0, errors.Wrap(err, "failed pruning cooldown")
	}

	last, found, err := c.set.Newest(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed reading cooldown")
	}
	if found {
		lastAt := time.UnixMilli(int64(last.Score))
		return lastAt.Add(c.window).Sub(now), ErrCooldown
	}

	if err := c.set.AddValuesWithScore(ctx, float64(now.UnixMilli()), uuid.NewString()); err != nil {
		return 0, errors.Wrap(err, "failed recording cooldown")
	}
	if err := c.set.Expire(ctx, 2*c.window); err != nil {
		return 0, errors.Wrap(err, "failed setting cooldown ttl")
	}
	return 0, nil
}

func (c *Cooldown) Reset(ctx context.Context) error {
	return errors.Wrap(c.set.Clear(ctx), "failed clearing cooldown")
}
