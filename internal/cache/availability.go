package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability responses are pure functions of slow-moving inputs, so a
// short TTL per (caregiver, date) key absorbs read bursts. Writes that
// change the inputs invalidate the caregiver's keys.
const availabilityTTL = 60 * time.Second

type AvailabilityCache struct {
	client *redis.Client
}

// New returns a disabled cache when addr is empty; every lookup then
// misses and every store is a no-op.
func New(addr string) *AvailabilityCache {
	if addr == "" {
		return &AvailabilityCache{}
	}
	return &AvailabilityCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(caregiverID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", caregiverID, date)
}

func (c *AvailabilityCache) Get(ctx context.Context, caregiverID uint, date string, out any) bool {
	if c.client == nil {
		return false
	}
	payload, err := c.client.Get(ctx, key(caregiverID, date)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, out) == nil
}

func (c *AvailabilityCache) Set(ctx context.Context, caregiverID uint, date string, value any) {
	if c.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(caregiverID, date), payload, availabilityTTL)
}

// Invalidate drops every cached date of one caregiver. Cheap enough at
// this key cardinality; called on booking, template and unavailability
// writes.
func (c *AvailabilityCache) Invalidate(ctx context.Context, caregiverID uint) {
	if c.client == nil {
		return
	}
	pattern := fmt.Sprintf("availability:%d:*", caregiverID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}
