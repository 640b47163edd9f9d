package cache

import (
	"Foodgram/config"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// 成员集合默认过期时间
const membershipExpireAt = time.Minute

// 版本号过期时间，远大于集合过期时间
const versionExpireAt = 24 * time.Hour

// 空集合占位成员，ID 从不为 0
const emptyMarker = "0"

// MembershipStorage 缓存用户的收藏 / 购物车 / 关注集合。
// 数据库是唯一事实来源，缓存只用于列表页批量计算标记，写操作后立即失效。
// 每次失效递增版本号，回源写入只在版本号未变时生效，避免把旧集合写回缓存。
// nil 接收者表示未启用缓存，所有方法均为空操作。
type MembershipStorage struct {
	redis  *redis.Client
	expire time.Duration
}

func NewMembershipStorage(rds *redis.Client, conf *config.Config) *MembershipStorage {
	if rds == nil {
		return nil
	}
	expire := membershipExpireAt
	if conf.Redis != nil && conf.Redis.MembershipTTL > 0 {
		expire = time.Duration(conf.Redis.MembershipTTL) * time.Second
	}
	return &MembershipStorage{redis: rds, expire: expire}
}

// Members 读取集合
// @params kind     关系类型 favorite / cart / subscription
// @params subject  主体用户ID
// 返回 ok=false 表示未命中
func (m *MembershipStorage) Members(ctx context.Context, kind string, subject uint64) ([]uint64, bool, error) {
	if m == nil {
		return nil, false, nil
	}
	items, err := m.redis.SMembers(ctx, m.name(kind, subject)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if len(items) == 0 {
		return nil, false, nil
	}

	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		if item == emptyMarker {
			continue
		}
		id, err := strconv.ParseUint(item, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("membership cache: bad member %q: %w", item, err)
		}
		ids = append(ids, id)
	}
	return ids, true, nil
}

// Version 集合当前版本号，回源读库之前调用，未写过时为 0
func (m *MembershipStorage) Version(ctx context.Context, kind string, subject uint64) (int64, error) {
	if m == nil {
		return 0, nil
	}
	return m.version(ctx, m.redis, kind, subject)
}

// Store 整体写入集合
// @params version  回源前读到的版本号，期间发生过写操作则放弃写入
// 返回 false 表示版本已变化，未写入
func (m *MembershipStorage) Store(ctx context.Context, kind string, subject uint64, version int64, ids []uint64) (bool, error) {
	if m == nil {
		return false, nil
	}
	name := m.name(kind, subject)
	members := make([]any, 0, len(ids)+1)
	members = append(members, emptyMarker)
	for _, id := range ids {
		members = append(members, strconv.FormatUint(id, 10))
	}

	stored := false
	err := m.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := m.version(ctx, tx, kind, subject)
		if err != nil {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, name)
			pipe.SAdd(ctx, name, members...)
			pipe.Expire(ctx, name, m.expire)
			return nil
		})
		if err != nil {
			return err
		}
		stored = true
		return nil
	}, m.versionName(kind, subject))
	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored, nil
}

// Invalidate 使集合失效，同时递增版本号，让进行中的回源写入作废
func (m *MembershipStorage) Invalidate(ctx context.Context, kind string, subject uint64) error {
	if m == nil {
		return nil
	}
	versionName := m.versionName(kind, subject)
	_, err := m.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionName)
		pipe.Expire(ctx, versionName, versionExpireAt)
		pipe.Del(ctx, m.name(kind, subject))
		return nil
	})
	return err
}

func (m *MembershipStorage) version(ctx context.Context, c getter, kind string, subject uint64) (int64, error) {
	v, err := c.Get(ctx, m.versionName(kind, subject)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (m *MembershipStorage) name(kind string, subject uint64) string {
	return fmt.Sprintf("foodgram:membership:%s:%d", kind, subject)
}

func (m *MembershipStorage) versionName(kind string, subject uint64) string {
	return fmt.Sprintf("foodgram:membership:%s:%d:ver", kind, subject)
}
