package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velora-app/velora-server/internal/config"
)

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// KeyForUnreadNotifications generates the cache key for a user's unread
// notification count.
func (c *RedisCache) KeyForUnreadNotifications(userID uint64) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

// GetUnreadNotificationCount reads the cached counter. A cache miss
// returns (0, false, nil) so callers fall back to the DB.
func (c *RedisCache) GetUnreadNotificationCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := c.KeyForUnreadNotifications(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, time.Hour).Err()
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// SetUnreadNotificationCount stores the counter with a 1h TTL.
func (c *RedisCache) SetUnreadNotificationCount(ctx context.Context, userID uint64, count int64) error {
	return c.Client.Set(ctx, c.KeyForUnreadNotifications(userID), count, time.Hour).Err()
}

// InvalidateUnreadNotificationCount drops the cached counter after a
// write to the notifications table.
func (c *RedisCache) InvalidateUnreadNotificationCount(ctx context.Context, userID uint64) error {
	return c.Client.Del(ctx, c.KeyForUnreadNotifications(userID)).Err()
}

// ChannelForConversation is the pub/sub channel carrying row-level
// message events for one conversation, in insertion order.
func (c *RedisCache) ChannelForConversation(conversationID uint64) string {
	return fmt.Sprintf("chat:conv:%d", conversationID)
}

// ChannelForUser is the pub/sub channel carrying notification events
// for one user.
func (c *RedisCache) ChannelForUser(userID uint64) string {
	return fmt.Sprintf("notify:user:%d", userID)
}

// Publish pushes a payload to subscribers of the given channel.
// Delivery is best-effort; the row insert is the durable record.
func (c *RedisCache) Publish(ctx context.Context, channel string, payload []byte) error {
	return c.Client.Publish(ctx, channel, payload).Err()
}

// Subscribe opens a subscription on the given channels. The caller owns
// the returned PubSub and must Close it.
func (c *RedisCache) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	return c.Client.Subscribe(ctx, channels...)
}
