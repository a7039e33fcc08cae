// Package leaderboard mirrors category standings into Redis for the
// live monitor display. The mirror is read-only for this service's
// correctness: the authoritative winners always come from the scoring
// pipeline, so a stale or lost key only affects the display.
package leaderboard

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/vetmed/research-day/internal/ports"
)

var _ ports.Leaderboard = (*RedisLeaderboard)(nil)

const keyPrefix = "research-day:standings:"

// RedisLeaderboard publishes category standings as one sorted set per
// category, scored by final score.
type RedisLeaderboard struct {
	client *redis.Client
}

// New connects a leaderboard to the given Redis address.
func New(addr string) *RedisLeaderboard {
	return &RedisLeaderboard{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// NewWithClient wraps an existing client, used in tests.
func NewWithClient(client *redis.Client) *RedisLeaderboard {
	return &RedisLeaderboard{client: client}
}

// Key returns the sorted-set key for a category.
func Key(categoryID string) string { return keyPrefix + categoryID }

// PublishStandings rebuilds the category's sorted set in one
// transaction. Standings are small (a category holds at most a few
// dozen presenters), so a full rebuild is simpler than diffing.
func (l *RedisLeaderboard) PublishStandings(ctx context.Context, categoryID string, entries []ports.StandingsEntry) error {
	key := Key(categoryID)

	members := make([]*redis.Z, 0, len(entries))
	for _, e := range entries {
		members = append(members, &redis.Z{Score: e.FinalScore, Member: e.PresenterID})
	}

	pipe := l.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.ZAdd(ctx, key, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish standings %s: %w", categoryID, err)
	}
	return nil
}

// Standings reads back a category's current standings, best first.
func (l *RedisLeaderboard) Standings(ctx context.Context, categoryID string) ([]ports.StandingsEntry, error) {
	zs, err := l.client.ZRevRangeWithScores(ctx, Key(categoryID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read standings %s: %w", categoryID, err)
	}
	out := make([]ports.StandingsEntry, 0, len(zs))
	for _, z := range zs {
		id, _ := z.Member.(string)
		out = append(out, ports.StandingsEntry{PresenterID: id, FinalScore: z.Score})
	}
	return out, nil
}

// Close releases the underlying connection.
func (l *RedisLeaderboard) Close() error { return l.client.Close() }
