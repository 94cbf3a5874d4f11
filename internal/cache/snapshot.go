package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pika_mood/internal/analytics"
	"pika_mood/internal/logger"
)

// SnapshotCache keeps computed couple reports for a short TTL so two
// partners refreshing at once do not recompute the same bundle twice.
// Every cache failure degrades to a recompute.
type SnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration, log *logger.Logger) *SnapshotCache {
	return &SnapshotCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With("component", "snapshot_cache"),
	}
}

// coupleKey is directional: the report is computed from self's side.
func coupleKey(selfID, partnerID string) string {
	return fmt.Sprintf("couple:%s:%s", selfID, partnerID)
}

func (c *SnapshotCache) GetCouple(ctx context.Context, selfID, partnerID string) (*analytics.CoupleReport, bool) {
	raw, err := c.rdb.Get(ctx, coupleKey(selfID, partnerID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("couple snapshot read failed", "error", err)
		}
		return nil, false
	}

	var report analytics.CoupleReport
	if err := json.Unmarshal(raw, &report); err != nil {
		c.log.Warn("couple snapshot unmarshal failed", "error", err)
		return nil, false
	}
	return &report, true
}

func (c *SnapshotCache) SetCouple(ctx context.Context, selfID, partnerID string, report *analytics.CoupleReport) {
	raw, err := json.Marshal(report)
	if err != nil {
		c.log.Warn("couple snapshot marshal failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, coupleKey(selfID, partnerID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("couple snapshot write failed", "error", err)
	}
}

// InvalidateOwner drops every snapshot the owner participates in, on
// either side of the key.
func (c *SnapshotCache) InvalidateOwner(ctx context.Context, ownerID string) {
	patterns := []string{
		fmt.Sprintf("couple:%s:*", ownerID),
		fmt.Sprintf("couple:*:%s", ownerID),
	}
	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				c.log.Warn("couple snapshot delete failed", "key", iter.Val(), "error", err)
			}
		}
		if err := iter.Err(); err != nil {
			c.log.Warn("couple snapshot scan failed", "error", err)
		}
	}
}
