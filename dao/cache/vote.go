package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const voteSetTTL = 24 * time.Hour

// VoteStorage 缓存用户投过票的资源 ID 集合，供信息流快速判断
type VoteStorage struct {
	redis *redis.Client
}

func NewVoteStorage(redis *redis.Client) *VoteStorage {
	return &VoteStorage{redis: redis}
}

// IsVoted 判断用户是否给资源投过票。缓存不可用或集合不存在时返回错误，由上层回源数据库
func (c *VoteStorage) IsVoted(ctx context.Context, userID, assetID uint64) (bool, error) {
	key := c.userKey(userID)
	exists, err := c.redis.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if exists == 0 {
		return false, redis.Nil
	}
	return c.redis.SIsMember(ctx, key, assetID).Result()
}

// Add 投票后写入集合，尽力而为
func (c *VoteStorage) Add(ctx context.Context, userID, assetID uint64) error {
	key := c.userKey(userID)
	_, err := c.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, assetID)
		pipe.Expire(ctx, key, voteSetTTL)
		return nil
	})
	return err
}

// Remove 取消投票后从集合移除，尽力而为
func (c *VoteStorage) Remove(ctx context.Context, userID, assetID uint64) error {
	return c.redis.SRem(ctx, c.userKey(userID), assetID).Err()
}

// Prime 用数据库查到的完整列表重建集合
func (c *VoteStorage) Prime(ctx context.Context, userID uint64, assetIDs []uint64) error {
	key := c.userKey(userID)
	members := make([]any, 0, len(assetIDs)+1)
	// 哨兵成员保证空集合也能命中缓存
	members = append(members, "0")
	for _, id := range assetIDs {
		members = append(members, strconv.FormatUint(id, 10))
	}
	_, err := c.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.SAdd(ctx, key, members...)
		pipe.Expire(ctx, key, voteSetTTL)
		return nil
	})
	return err
}

func (c *VoteStorage) userKey(userID uint64) string {
	return fmt.Sprintf("user:useful:assets:%d", userID)
}
