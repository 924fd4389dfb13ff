package cache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const (
	dailyKeyPrefix = "dau:"
	dailyKeyTTL    = 48 * time.Hour
)

// Daily holds the per-date active-user sets. SADD gives the same atomic
// set-union semantics the tracker needs: repeat activity by one user on
// one day never double counts, even under concurrent writers.
type Daily struct {
	client *redis.Client
}

func NewDaily(addr string) *Daily {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &Daily{
		client: client,
	}
}

// AddActiveUser records a user as active on the given calendar date.
// The key expires after 48h; only today's set is ever read.
func (d *Daily) AddActiveUser(ctx context.Context, date, userEmail string) error {
	key := dailyKeyPrefix + date
	if err := d.client.SAdd(ctx, key, userEmail).Err(); err != nil {
		return err
	}
	return d.client.Expire(ctx, key, dailyKeyTTL).Err()
}

// ActiveUserCount returns the number of distinct users active on the
// given date; zero for dates with no record.
func (d *Daily) ActiveUserCount(ctx context.Context, date string) (int, error) {
	n, err := d.client.SCard(ctx, dailyKeyPrefix+date).Result()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (d *Daily) Close() error {
	return d.client.Close()
}
